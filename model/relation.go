package model

// --- 依赖关系类型 (Dependency Relation Types) ---

// DependencyType 是表示依赖关系的字符串常量
type DependencyType string

const (
	// --- 1. 组织与继承关系 (Structural & Hierarchy) ---

	// Contain 包含: 类型与其成员、嵌套类型之间的归属关系
	// e.g., [Java: Source(Class) -> Target(Method/Field/Class)]
	Contain DependencyType = "CONTAIN"

	// Extend 继承: 类与类、接口与接口之间的继承
	// e.g., [Java: Source(Class/Interface) -> Target(Class/Interface)]
	Extend DependencyType = "EXTEND"

	// Implement 实现: 类实现接口
	// e.g., [Java: Source(Class) -> Target(Interface)]
	Implement DependencyType = "IMPLEMENT"

	// --- 2. 签名中的类型引用 (Typing & Metadata) ---

	// RelAnnotation 注解: 符号被特定注解修饰
	// e.g., [Java: Source(Class/Method/Field) -> Target(AnnotationClass)]
	RelAnnotation DependencyType = "ANNOTATION"

	// Parameter 参数类型: 方法参数对类型的依赖
	// e.g., [Java: Source(Method) -> Target(Class)]
	Parameter DependencyType = "PARAMETER"

	// RelReturn 返回类型: 方法返回值对类型的依赖
	// e.g., [Java: Source(Method) -> Target(Class)]
	RelReturn DependencyType = "RETURN"

	// RelThrow 抛出异常: 方法声明抛出的异常类型
	// e.g., [Java: Source(Method) -> Target(Class)]
	RelThrow DependencyType = "THROW"

	// --- 3. 行为与执行流 (Behavioral & Execution) ---

	// Call 调用: 方法体或初始化器中的方法调用
	// e.g., [Java: Source(Method/Field) -> Target(Method)]
	Call DependencyType = "CALL"

	// Create 实例创建: new 表达式解析到的构造器
	// e.g., [Java: Source(Method/Field) -> Target(Constructor)]
	Create DependencyType = "CREATE"

	// Reference 方法引用: Type::method / expr::method / Type::new
	// e.g., [Java: Source(Method) -> Target(Method)]
	Reference DependencyType = "REFERENCE"

	// RelCast 强转: 显式的类型转换
	// e.g., [Java: Source(Method) -> Target(Class)]
	RelCast DependencyType = "CAST"

	// --- 4. 数据流与状态引用 (Data Flow & State) ---

	// Use 使用: 读取字段的值
	// e.g., [Java: Source(Method) -> Target(Field)]
	Use DependencyType = "USE"

	// Assign 赋值: 将值写入字段
	// e.g., [Java: Source(Method) -> Target(Field)]
	Assign DependencyType = "ASSIGN"
)

// DependencyRelation 描述 Source 与 Target 之间的一条依赖
type DependencyRelation struct {
	// Type: 依赖关系的类型 (e.g., CALL, EXTEND)
	Type DependencyType `json:"Type"`

	// Source / Target: 发起方与指向方的句柄
	Source MemberRef `json:"Source"`
	Target MemberRef `json:"Target"`

	// SourceName / TargetName: 导出时填充的全限定名
	SourceName string `json:"SourceName,omitempty"`
	TargetName string `json:"TargetName,omitempty"`

	// Location: 关系发生的代码位置；签名派生的关系指向声明处
	Location *Location `json:"Location,omitempty"`

	// External: Target 不是源码类型（来自 JDK 或其他字节码）
	External bool `json:"External,omitempty"`
}
