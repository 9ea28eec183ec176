package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/spf13/pflag"
)

// kindValue is a pflag.Value restricted to the valid context kinds.
type kindValue struct {
	kind    *domain.ContextKind
	allowed []domain.ContextKind
}

var _ pflag.Value = (*kindValue)(nil)

func newKindValue(def domain.ContextKind, p *domain.ContextKind, allowed ...domain.ContextKind) *kindValue {
	*p = def
	return &kindValue{kind: p, allowed: allowed}
}

func (k *kindValue) String() string {
	if k.kind == nil {
		return ""
	}
	return string(*k.kind)
}

func (k *kindValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range k.allowed {
		if string(a) == s {
			*k.kind = a
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", k.Type())
}

func (k *kindValue) Type() string {
	names := make([]string, len(k.allowed))
	for i, a := range k.allowed {
		names[i] = string(a)
	}
	return strings.Join(names, "|")
}

func addKindFlag(fs *pflag.FlagSet, p *domain.ContextKind, def domain.ContextKind, allowed ...domain.ContextKind) {
	fs.Var(newKindValue(def, p, allowed...), "kind", "Assessment context")
}
