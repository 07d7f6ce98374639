package handler

type ContextKey string

var (
	SubCtxKey   ContextKey = "sub"
	MyInfoCtx   ContextKey = "myInfo"
	ShiftCtx    ContextKey = "shift"
	DTREntryCtx ContextKey = "dtrEntry"
)
