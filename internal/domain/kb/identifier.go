package kb

import (
	"strings"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Identifier is a cross-reference into an external namespace, such as
// "chebi:CHEBI:12345" or "doi:10.1000/xyz".
type Identifier struct {
	Namespace string
	ID        string
}

// Serialize renders the identifier as "namespace:id".
func (i *Identifier) Serialize() string {
	return i.Namespace + ":" + i.ID
}

// SerializeIdentifiers renders a list of identifiers joined by ", ".
func SerializeIdentifiers(identifiers []*Identifier) string {
	parts := make([]string, len(identifiers))
	for n, id := range identifiers {
		parts[n] = id.Serialize()
	}
	return strings.Join(parts, ", ")
}

// ParseIdentifiers parses a ", "-separated list of "namespace:id" tokens.
// Identifiers are cached in the pool by their serialized form so repeated
// occurrences resolve to the same instance.  An empty input yields nil.
func ParseIdentifiers(value string, pool *Pool) ([]*Identifier, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var result []*Identifier
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		sep := strings.Index(token, ":")
		if sep <= 0 || sep == len(token)-1 {
			return nil, errors.Newf(errors.ErrCodeIdentifierInvalid,
				"invalid identifier %q: expected namespace:id", token)
		}
		identifier := &Identifier{Namespace: token[:sep], ID: token[sep+1:]}
		key := identifier.Serialize()
		if cached, ok := pool.Get(KindIdentifier, key); ok {
			identifier = cached.(*Identifier)
		} else {
			pool.Put(KindIdentifier, key, identifier)
		}
		result = append(result, identifier)
	}
	return result, nil
}
