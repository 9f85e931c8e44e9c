package apierrors

const (
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailListProjects      = "failListProjects"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailDeleteProject     = "failDeleteProject"

	MsgInvalidCollectionPayload = "invalidCollectionPayload"
	MsgCollectionNotFound       = "collectionNotFound"
	MsgFailListCollections      = "failListCollections"
	MsgFailCreateCollection     = "failCreateCollection"
	MsgFailDeleteCollection     = "failDeleteCollection"
)
