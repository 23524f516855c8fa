package java

// tree-sitter-java 节点种类
const (
	KindProgram            = "program"
	KindPackageDeclaration = "package_declaration"
	KindImportDeclaration  = "import_declaration"

	// 类型声明
	KindClassDeclaration          = "class_declaration"
	KindInterfaceDeclaration      = "interface_declaration"
	KindEnumDeclaration           = "enum_declaration"
	KindRecordDeclaration         = "record_declaration"
	KindAnnotationTypeDeclaration = "annotation_type_declaration"

	// 成员声明
	KindFieldDeclaration              = "field_declaration"
	KindConstantDeclaration           = "constant_declaration"
	KindMethodDeclaration             = "method_declaration"
	KindConstructorDeclaration        = "constructor_declaration"
	KindCompactConstructor            = "compact_constructor_declaration"
	KindAnnotationElement             = "annotation_type_element_declaration"
	KindStaticInitializer             = "static_initializer"
	KindEnumConstant                  = "enum_constant"
	KindEnumBodyDeclarations          = "enum_body_declarations"
	KindVariableDeclarator            = "variable_declarator"
	KindFormalParameter               = "formal_parameter"
	KindSpreadParameter               = "spread_parameter"
	KindReceiverParameter             = "receiver_parameter"
	KindModifiers                     = "modifiers"
	KindMarkerAnnotation              = "marker_annotation"
	KindAnnotation                    = "annotation"
	KindThrows                        = "throws"
	KindExtendsInterfaces             = "extends_interfaces"
	KindTypeList                      = "type_list"
	KindTypeParameter                 = "type_parameter"
	KindTypeBound                     = "type_bound"
	KindConstructorBody               = "constructor_body"
	KindExplicitConstructorInvocation = "explicit_constructor_invocation"

	// 类型
	KindTypeIdentifier       = "type_identifier"
	KindScopedTypeIdentifier = "scoped_type_identifier"
	KindGenericType          = "generic_type"
	KindArrayType            = "array_type"
	KindIntegralType         = "integral_type"
	KindFloatingPointType    = "floating_point_type"
	KindBooleanType          = "boolean_type"
	KindVoidType             = "void_type"
	KindAnnotatedType        = "annotated_type"
	KindTypeArguments        = "type_arguments"
	KindWildcard             = "wildcard"
	KindDimensions           = "dimensions"
	KindDimensionsExpr       = "dimensions_expr"

	// 语句
	KindBlock                     = "block"
	KindExpressionStatement       = "expression_statement"
	KindLocalVariableDeclaration  = "local_variable_declaration"
	KindIfStatement               = "if_statement"
	KindWhileStatement            = "while_statement"
	KindDoStatement               = "do_statement"
	KindForStatement              = "for_statement"
	KindEnhancedForStatement      = "enhanced_for_statement"
	KindReturnStatement           = "return_statement"
	KindBreakStatement            = "break_statement"
	KindContinueStatement         = "continue_statement"
	KindThrowStatement            = "throw_statement"
	KindYieldStatement            = "yield_statement"
	KindAssertStatement           = "assert_statement"
	KindSynchronizedStatement     = "synchronized_statement"
	KindLabeledStatement          = "labeled_statement"
	KindTryStatement              = "try_statement"
	KindTryWithResourcesStatement = "try_with_resources_statement"
	KindCatchClause               = "catch_clause"
	KindCatchFormalParameter      = "catch_formal_parameter"
	KindCatchType                 = "catch_type"
	KindFinallyClause             = "finally_clause"
	KindResourceSpecification     = "resource_specification"
	KindResource                  = "resource"
	KindSwitchBlock               = "switch_block"
	KindSwitchGroup               = "switch_block_statement_group"
	KindSwitchRule                = "switch_rule"
	KindSwitchLabel               = "switch_label"
	KindGuard                     = "guard"
	KindPattern                   = "pattern"
	KindTypePattern               = "type_pattern"
	KindRecordPattern             = "record_pattern"
	KindEmptyStatement            = ";"

	// 表达式
	KindIdentifier           = "identifier"
	KindScopedIdentifier     = "scoped_identifier"
	KindThis                 = "this"
	KindSuper                = "super"
	KindParenthesized        = "parenthesized_expression"
	KindBinaryExpression     = "binary_expression"
	KindUnaryExpression      = "unary_expression"
	KindUpdateExpression     = "update_expression"
	KindAssignmentExpression = "assignment_expression"
	KindCastExpression       = "cast_expression"
	KindInstanceofExpression = "instanceof_expression"
	KindTernaryExpression    = "ternary_expression"
	KindMethodInvocation     = "method_invocation"
	KindObjectCreation       = "object_creation_expression"
	KindArrayCreation        = "array_creation_expression"
	KindArrayInitializer     = "array_initializer"
	KindArrayAccess          = "array_access"
	KindFieldAccess          = "field_access"
	KindClassLiteral         = "class_literal"
	KindLambdaExpression     = "lambda_expression"
	KindInferredParameters   = "inferred_parameters"
	KindFormalParameters     = "formal_parameters"
	KindMethodReference      = "method_reference"
	KindSwitchExpression     = "switch_expression"
	KindArgumentList         = "argument_list"
	KindClassBody            = "class_body"

	// 字面量
	KindDecimalInteger = "decimal_integer_literal"
	KindHexInteger     = "hex_integer_literal"
	KindOctalInteger   = "octal_integer_literal"
	KindBinaryInteger  = "binary_integer_literal"
	KindDecimalFloat   = "decimal_floating_point_literal"
	KindHexFloat       = "hex_floating_point_literal"
	KindTrue           = "true"
	KindFalse          = "false"
	KindCharacter      = "character_literal"
	KindString         = "string_literal"
	KindTextBlock      = "text_block"
	KindNull           = "null_literal"

	KindLineComment  = "line_comment"
	KindBlockComment = "block_comment"
	KindError        = "ERROR"
)

// 诊断种类
const (
	DiagDroppedStatement     = "DROPPED_STATEMENT"
	DiagOrphanCompanion      = "ORPHAN_COMPANION"
	DiagUnresolvedImport     = "UNRESOLVED_IMPORT"
	DiagResolveFailed        = "RESOLVE_FAILED"
	DiagDuplicateVariable    = "DUPLICATE_VARIABLE"
	DiagDroppedMember        = "DROPPED_MEMBER"
	DiagUnresolvedAnnotation = "UNRESOLVED_ANNOTATION"
)

const (
	ConstructorName   = "<init>"
	StaticBlockName   = "<clinit>"
	InstanceBlockName = "<instance>"
	ValuesMethod      = "values"
	ValueOfMethod     = "valueOf"
)
