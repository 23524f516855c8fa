package model

import "strings"

type TypeNature int

const (
	NatureClass TypeNature = iota
	NatureInterface
	NatureEnum
	NatureRecord
	NatureAnnotation
	NaturePrimitive
)

func (n TypeNature) String() string {
	return [...]string{"class", "interface", "enum", "record", "annotation", "primitive"}[n]
}

// Modifiers 修饰符位集
type Modifiers uint32

const (
	ModPublic Modifiers = 1 << iota
	ModProtected
	ModPrivate
	ModStatic
	ModFinal
	ModAbstract
	ModDefault
	ModSynchronized
	ModNative
	ModTransient
	ModVolatile
	ModStrictFP
	ModSealed
	ModNonSealed
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModPublic, "public"}, {ModProtected, "protected"}, {ModPrivate, "private"},
	{ModStatic, "static"}, {ModFinal, "final"}, {ModAbstract, "abstract"},
	{ModDefault, "default"}, {ModSynchronized, "synchronized"}, {ModNative, "native"},
	{ModTransient, "transient"}, {ModVolatile, "volatile"}, {ModStrictFP, "strictfp"},
	{ModSealed, "sealed"}, {ModNonSealed, "non-sealed"},
}

func ParseModifier(s string) (Modifiers, bool) {
	for _, m := range modifierNames {
		if m.name == s {
			return m.mod, true
		}
	}
	return 0, false
}

func (m Modifiers) Has(o Modifiers) bool { return m&o != 0 }

func (m Modifiers) Names() []string {
	var out []string
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			out = append(out, mn.name)
		}
	}
	return out
}

func (m Modifiers) String() string { return strings.Join(m.Names(), " ") }

type Annotation struct {
	Type TypeID
	// Values 原样保留的元素值，key 为元素名（单值注解为 "value"）
	Values map[string]string
}

// ==========================================
// 类型签名 (Type Inspection)
// ==========================================

type TypeInspection struct {
	Nature         TypeNature
	Modifiers      Modifiers
	TypeParameters []TypeParameter
	// Parent 接口与 java.lang.Object 为 nil
	Parent      *ParameterizedType
	Interfaces  []ParameterizedType
	Fields      []FieldID
	Methods     []MethodID
	// Constructors 同时包含紧凑构造器与初始化块之外的全部构造器
	Constructors []MethodID
	SubTypes     []TypeID
	Annotations  []Annotation
	// Initializers static/实例初始化块合成的方法
	Initializers []MethodID

	FromSource          bool
	FunctionalInterface bool
	Location            *Location
}

func (ti *TypeInspection) IsInterface() bool {
	return ti.Nature == NatureInterface || ti.Nature == NatureAnnotation
}

func (ti *TypeInspection) IsStatic() bool { return ti.Modifiers.Has(ModStatic) }

// AllMethods 方法、构造器与初始化块，按声明顺序
func (ti *TypeInspection) AllMethods() []MethodID {
	out := make([]MethodID, 0, len(ti.Constructors)+len(ti.Methods)+len(ti.Initializers))
	out = append(out, ti.Constructors...)
	out = append(out, ti.Methods...)
	out = append(out, ti.Initializers...)
	return out
}

type TypeInspectionBuilder struct {
	insp TypeInspection
}

func NewTypeInspectionBuilder(nature TypeNature) *TypeInspectionBuilder {
	return &TypeInspectionBuilder{insp: TypeInspection{Nature: nature}}
}

func (b *TypeInspectionBuilder) Nature() TypeNature { return b.insp.Nature }

func (b *TypeInspectionBuilder) SetModifiers(m Modifiers) *TypeInspectionBuilder {
	b.insp.Modifiers |= m
	return b
}

func (b *TypeInspectionBuilder) Modifiers() Modifiers { return b.insp.Modifiers }

func (b *TypeInspectionBuilder) SetParent(p ParameterizedType) *TypeInspectionBuilder {
	b.insp.Parent = &p
	return b
}

func (b *TypeInspectionBuilder) Parent() *ParameterizedType { return b.insp.Parent }

func (b *TypeInspectionBuilder) AddInterface(p ParameterizedType) *TypeInspectionBuilder {
	b.insp.Interfaces = append(b.insp.Interfaces, p)
	return b
}

func (b *TypeInspectionBuilder) Interfaces() []ParameterizedType { return b.insp.Interfaces }

func (b *TypeInspectionBuilder) AddTypeParameter(tp TypeParameter) *TypeInspectionBuilder {
	b.insp.TypeParameters = append(b.insp.TypeParameters, tp)
	return b
}

func (b *TypeInspectionBuilder) TypeParameters() []TypeParameter { return b.insp.TypeParameters }

func (b *TypeInspectionBuilder) AddField(id FieldID) *TypeInspectionBuilder {
	b.insp.Fields = append(b.insp.Fields, id)
	return b
}

func (b *TypeInspectionBuilder) Fields() []FieldID { return b.insp.Fields }

func (b *TypeInspectionBuilder) AddMethod(id MethodID) *TypeInspectionBuilder {
	b.insp.Methods = append(b.insp.Methods, id)
	return b
}

func (b *TypeInspectionBuilder) Methods() []MethodID { return b.insp.Methods }

func (b *TypeInspectionBuilder) AddConstructor(id MethodID) *TypeInspectionBuilder {
	b.insp.Constructors = append(b.insp.Constructors, id)
	return b
}

func (b *TypeInspectionBuilder) Constructors() []MethodID { return b.insp.Constructors }

func (b *TypeInspectionBuilder) AddInitializer(id MethodID) *TypeInspectionBuilder {
	b.insp.Initializers = append(b.insp.Initializers, id)
	return b
}

func (b *TypeInspectionBuilder) AddSubType(id TypeID) *TypeInspectionBuilder {
	b.insp.SubTypes = append(b.insp.SubTypes, id)
	return b
}

func (b *TypeInspectionBuilder) AddAnnotation(a Annotation) *TypeInspectionBuilder {
	b.insp.Annotations = append(b.insp.Annotations, a)
	return b
}

func (b *TypeInspectionBuilder) SetFromSource(loc *Location) *TypeInspectionBuilder {
	b.insp.FromSource = true
	b.insp.Location = loc
	return b
}

func (b *TypeInspectionBuilder) SetFunctionalInterface(v bool) *TypeInspectionBuilder {
	b.insp.FunctionalInterface = v
	return b
}

// Build 产出不可变的签名；之后对 builder 的修改不会影响结果
func (b *TypeInspectionBuilder) Build() *TypeInspection {
	out := b.insp
	out.TypeParameters = append([]TypeParameter(nil), b.insp.TypeParameters...)
	out.Interfaces = append([]ParameterizedType(nil), b.insp.Interfaces...)
	out.Fields = append([]FieldID(nil), b.insp.Fields...)
	out.Methods = append([]MethodID(nil), b.insp.Methods...)
	out.Constructors = append([]MethodID(nil), b.insp.Constructors...)
	out.Initializers = append([]MethodID(nil), b.insp.Initializers...)
	out.SubTypes = append([]TypeID(nil), b.insp.SubTypes...)
	out.Annotations = append([]Annotation(nil), b.insp.Annotations...)
	return &out
}

// ==========================================
// 成员签名 (Member Inspections)
// ==========================================

type MethodKind int

const (
	KindMethod MethodKind = iota
	KindConstructor
	KindCompactConstructor
	KindStaticBlock
	KindInstanceBlock
)

// CompanionAction 伴生方法名中编码的动作：main$Action$Aspect
type CompanionAction string

const (
	CompanionAspect        CompanionAction = "Aspect"
	CompanionInvariant     CompanionAction = "Invariant"
	CompanionModification  CompanionAction = "Modification"
	CompanionPrecondition  CompanionAction = "Precondition"
	CompanionPostcondition CompanionAction = "Postcondition"
	CompanionValue         CompanionAction = "Value"
	CompanionTransfer      CompanionAction = "Transfer"
	CompanionGenerate      CompanionAction = "Generate"
	CompanionErase         CompanionAction = "Erase"
	CompanionClear         CompanionAction = "Clear"
)

var companionActions = []CompanionAction{
	CompanionAspect, CompanionInvariant, CompanionModification, CompanionPrecondition,
	CompanionPostcondition, CompanionValue, CompanionTransfer, CompanionGenerate,
	CompanionErase, CompanionClear,
}

type CompanionName struct {
	Main   string
	Action CompanionAction
	Aspect string
}

func (c CompanionName) String() string {
	s := c.Main + "$" + string(c.Action)
	if c.Aspect != "" {
		s += "$" + c.Aspect
	}
	return s
}

// ParseCompanionName 解析 size$Modification$Len 形式的名称，不符合时 ok 为 false
func ParseCompanionName(name string) (CompanionName, bool) {
	parts := strings.Split(name, "$")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return CompanionName{}, false
	}
	for _, a := range companionActions {
		if string(a) == parts[1] {
			cn := CompanionName{Main: parts[0], Action: a}
			if len(parts) == 3 {
				if parts[2] == "" {
					return CompanionName{}, false
				}
				cn.Aspect = parts[2]
			}
			return cn, true
		}
	}
	return CompanionName{}, false
}

type MethodInspection struct {
	Kind           MethodKind
	Modifiers      Modifiers
	TypeParameters []TypeParameter
	// ReturnType 构造器与初始化块为 NoType
	ReturnType  ParameterizedType
	Params      []ParamID
	Exceptions  []ParameterizedType
	Annotations []Annotation
	VarArgs     bool
	Synthetic   bool
	HasBody     bool
	Companions  map[CompanionName]MethodID
	Location    *Location
}

func (mi *MethodInspection) IsStatic() bool { return mi.Modifiers.Has(ModStatic) }

func (mi *MethodInspection) IsAbstract() bool { return mi.Modifiers.Has(ModAbstract) }

func (mi *MethodInspection) IsConstructor() bool {
	return mi.Kind == KindConstructor || mi.Kind == KindCompactConstructor
}

type MethodInspectionBuilder struct {
	insp MethodInspection
}

func NewMethodInspectionBuilder(kind MethodKind) *MethodInspectionBuilder {
	return &MethodInspectionBuilder{insp: MethodInspection{Kind: kind}}
}

func (b *MethodInspectionBuilder) SetModifiers(m Modifiers) *MethodInspectionBuilder {
	b.insp.Modifiers |= m
	return b
}

func (b *MethodInspectionBuilder) Modifiers() Modifiers { return b.insp.Modifiers }

func (b *MethodInspectionBuilder) SetReturnType(p ParameterizedType) *MethodInspectionBuilder {
	b.insp.ReturnType = p
	return b
}

func (b *MethodInspectionBuilder) AddTypeParameter(tp TypeParameter) *MethodInspectionBuilder {
	b.insp.TypeParameters = append(b.insp.TypeParameters, tp)
	return b
}

func (b *MethodInspectionBuilder) AddParameter(id ParamID, varArgs bool) *MethodInspectionBuilder {
	b.insp.Params = append(b.insp.Params, id)
	b.insp.VarArgs = varArgs
	return b
}

func (b *MethodInspectionBuilder) AddException(p ParameterizedType) *MethodInspectionBuilder {
	b.insp.Exceptions = append(b.insp.Exceptions, p)
	return b
}

func (b *MethodInspectionBuilder) AddAnnotation(a Annotation) *MethodInspectionBuilder {
	b.insp.Annotations = append(b.insp.Annotations, a)
	return b
}

func (b *MethodInspectionBuilder) SetSynthetic() *MethodInspectionBuilder {
	b.insp.Synthetic = true
	return b
}

func (b *MethodInspectionBuilder) SetHasBody(v bool) *MethodInspectionBuilder {
	b.insp.HasBody = v
	return b
}

func (b *MethodInspectionBuilder) SetLocation(loc *Location) *MethodInspectionBuilder {
	b.insp.Location = loc
	return b
}

func (b *MethodInspectionBuilder) AddCompanion(cn CompanionName, id MethodID) *MethodInspectionBuilder {
	if b.insp.Companions == nil {
		b.insp.Companions = make(map[CompanionName]MethodID)
	}
	b.insp.Companions[cn] = id
	return b
}

func (b *MethodInspectionBuilder) Build() *MethodInspection {
	out := b.insp
	out.Params = append([]ParamID(nil), b.insp.Params...)
	out.TypeParameters = append([]TypeParameter(nil), b.insp.TypeParameters...)
	out.Exceptions = append([]ParameterizedType(nil), b.insp.Exceptions...)
	out.Annotations = append([]Annotation(nil), b.insp.Annotations...)
	if b.insp.Companions != nil {
		out.Companions = make(map[CompanionName]MethodID, len(b.insp.Companions))
		for k, v := range b.insp.Companions {
			out.Companions[k] = v
		}
	}
	return &out
}

type FieldInspection struct {
	Modifiers       Modifiers
	Type            ParameterizedType
	Annotations     []Annotation
	Synthetic       bool
	EnumConstant    bool
	RecordComponent bool
	HasInitializer  bool
	Location        *Location
}

func (fi *FieldInspection) IsStatic() bool { return fi.Modifiers.Has(ModStatic) }

type ParameterInspection struct {
	Type        ParameterizedType
	VarArgs     bool
	Final       bool
	Annotations []Annotation
}
