package models

type SessionState int

const (
	StateIdle SessionState = iota
	StateAwaitingDeleteID
)
