package apierrors

const (
	MsgInvalidUserID        = "invalidUserID"
	MsgFailTaskStats        = "failTaskStats"
	MsgFailQuadrantStats    = "failQuadrantStats"
	MsgFailCategoryStats    = "failCategoryStats"
	MsgFailProjectStats     = "failProjectStats"
	MsgFailProjectTaskStats = "failProjectTaskStats"
	MsgFailDurationRanking  = "failDurationRanking"
	MsgFailExport           = "failExport"
)
