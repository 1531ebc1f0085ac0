package services

// Fallback notices shown when a failure carries no server message. The
// product ships in Brazilian Portuguese; pair these with
// apperrors.UserMessage at the call site.
const (
	NoticeGoalCreateFailed   = "Erro ao criar meta. Tente novamente."
	NoticeGoalUpdateFailed   = "Erro ao atualizar meta. Tente novamente."
	NoticeGoalStatusFailed   = "Houve um erro ao tentar atualizar o status da meta, por favor tente novamente mais tarde."
	NoticeGoalPinFailed      = "Houve um erro ao tentar fixar a meta, por favor tente novamente mais tarde."
	NoticeGoalUnpinFailed    = "Houve um erro ao tentar desfixar a meta, por favor tente novamente mais tarde."
	NoticeMemberUpdateFailed = "Erro ao atualizar usuário. Tente novamente."
	NoticeMemberRemoveFailed = "Erro ao remover membro. Tente novamente."
	NoticeInviteFailed       = "Erro ao enviar convite. Tente novamente."
	NoticeGenericFailure     = "Algo deu errado, por favor tente novamente mais tarde."
)
