package core

// Language 语言标识，用于按语言注册插件
type Language string

const LangJava Language = "java"
