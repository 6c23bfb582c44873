package mock

import "github.com/fwojciec/favmeta"

var _ favmeta.Localizer = (*Localizer)(nil)

// Localizer is a mock implementation of favmeta.Localizer.
type Localizer struct {
	MessageFn func(key string) string
}

func (l *Localizer) Message(key string) string {
	return l.MessageFn(key)
}
