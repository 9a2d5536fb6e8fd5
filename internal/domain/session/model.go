package session

import "vet-clinic-records/internal/domain/session/identity"

// Os tipos de identidade moram em session/identity para que pacotes dos
// quais session depende (users) também possam importá-los; aqui ficam
// aliases para preservar a API session.*.

type Kind = identity.Kind

const (
	KindAnonymous = identity.KindAnonymous
	KindLimited   = identity.KindLimited
	KindAdmin     = identity.KindAdmin
)

type Identity = identity.Identity

func Anonymous() Identity {
	return identity.Anonymous()
}

type Context = identity.Context
