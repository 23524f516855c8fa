package model

// SortedType Resolver 的产出单元：主类型 + 按依赖排序的成员
type SortedType struct {
	Primary TypeID
	// Members 依赖在前；同一成员环内的元素相邻
	Members []MemberRef
	// MemberCycles 成员级强连通分量（仅包含大小 > 1 的环）
	MemberCycles [][]MemberRef
	// Cycle 类型级环的全部成员（含自身），不在环中时为 nil
	Cycle []TypeID
}

func (st *SortedType) InCycle() bool { return len(st.Cycle) > 1 }

// TypeCycle 一组需要整体处理的类型；非环情况下只有一个元素
type TypeCycle struct {
	Types []*SortedType
}

func (tc TypeCycle) IsCycle() bool { return len(tc.Types) > 1 }

type SortedTypes struct {
	Cycles      []TypeCycle
	Relations   []*DependencyRelation
	Diagnostics []Diagnostic
}

// Flatten 按顺序展开所有 SortedType
func (s *SortedTypes) Flatten() []*SortedType {
	var out []*SortedType
	for _, c := range s.Cycles {
		out = append(out, c.Types...)
	}
	return out
}

type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// Diagnostic 结构化诊断，人类可读的格式化交给下游
type Diagnostic struct {
	Severity Severity  `json:"Severity"`
	Kind     string    `json:"Kind"`
	Location *Location `json:"Location,omitempty"`
	Subject  string    `json:"Subject,omitempty"`
	Detail   string    `json:"Detail,omitempty"`
}
