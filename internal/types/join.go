package types

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin      JoinType = "JOIN"
	LeftOuterJoin  JoinType = "LEFT OUTER JOIN"
	RightOuterJoin JoinType = "RIGHT OUTER JOIN"
	FullOuterJoin  JoinType = "FULL OUTER JOIN"
)

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)
