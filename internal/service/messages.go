package service

// User-facing failure messages. Presentation shows them verbatim.
const (
	MsgInvalidCredentials = "E-mail ou senha incorretos"
	MsgEmailTaken         = "E-mail já cadastrado"
	MsgPasswordMismatch   = "As senhas não coincidem"
	MsgPasswordTooShort   = "A senha deve ter pelo menos 6 caracteres"
	MsgNameRequired       = "Informe o nome"
	MsgEmailRequired      = "Informe o e-mail"
	MsgLoginRequired      = "Faça login para continuar"

	MsgGroupNameRequired   = "Informe o nome do grupo"
	MsgSubjectRequired     = "Informe a matéria"
	MsgGroupIDRequired     = "Informe o grupo"
	MsgMentorIDRequired    = "Informe o mentor"
	MsgTitleRequired       = "Informe o título"
	MsgMaterialTypeInvalid = "Tipo de material inválido"
	MsgLinkRequired        = "Informe o link"
	MsgFileSizeInvalid     = "Tamanho de arquivo inválido"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6
