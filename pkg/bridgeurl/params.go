package bridgeurl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// Parameters is an insertion-ordered map of parameter names to values.
// Replacing the values of an existing name keeps its position.
type Parameters struct {
	m *orderedmap.OrderedMap[string, []string]
}

func newParameters() *Parameters {
	return &Parameters{m: orderedmap.New[string, []string]()}
}

// Get returns the first value of name, or "" when absent.
func (p *Parameters) Get(name string) string {
	values, ok := p.m.Get(name)
	if !ok || len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values of name.
func (p *Parameters) Values(name string) []string {
	values, _ := p.m.Get(name)
	return values
}

// Has reports whether name is present.
func (p *Parameters) Has(name string) bool {
	_, ok := p.m.Get(name)
	return ok
}

// Set replaces the values of name.
func (p *Parameters) Set(name string, values ...string) {
	p.m.Set(name, values)
}

// Remove deletes name and returns its first value.
func (p *Parameters) Remove(name string) (string, bool) {
	values, ok := p.m.Delete(name)
	if !ok || len(values) == 0 {
		return "", ok
	}
	return values[0], true
}

// Names returns the parameter names in insertion order.
func (p *Parameters) Names() []string {
	names := make([]string, 0, p.m.Len())
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of parameter names.
func (p *Parameters) Len() int {
	return p.m.Len()
}

// Map returns a copy of the parameters as a plain map.
func (p *Parameters) Map() map[string][]string {
	out := make(map[string][]string, p.m.Len())
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = slices.Clone(pair.Value)
	}
	return out
}

// parseQuery reads the query of raw into a parameter map. "&amp;" counts
// as a separator. A repeated name keeps its last value.
func parseQuery(ctx context.Context, raw string, log *slog.Logger) *Parameters {
	params := newParameters()

	pos := strings.IndexByte(raw, '?')
	if pos < 0 {
		return params
	}

	query := strings.ReplaceAll(raw[pos+1:], "&amp;", "&")
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		tokens := splitDropTrailing(pair, "=")
		switch len(tokens) {
		case 1:
			params.Set(tokens[0], "")
		case 2:
			params.Set(tokens[0], tokens[1])
		default:
			log.ErrorContext(ctx, "invalid name=value pair in URL",
				slog.String("pair", pair),
				slog.String("url", raw),
			)
		}
	}
	return params
}

// splitDropTrailing splits s and drops trailing empty tokens, so "a=" has
// one token and "a=b=" has two.
func splitDropTrailing(s, sep string) []string {
	tokens := strings.Split(s, sep)
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// ParameterMap returns the live parameter map, parsed from the query on
// first use.
func (u *URL) ParameterMap() *Parameters {
	if u.params == nil {
		u.params = parseQuery(u.ctx(), u.raw, u.log())
	}
	return u.params
}

// Parameter returns the first value of name, or "" when absent.
func (u *URL) Parameter(name string) string {
	return u.ParameterMap().Get(name)
}

// SetParameter replaces the values of name.
func (u *URL) SetParameter(name string, values ...string) {
	u.ParameterMap().Set(name, values...)
}

// RemoveParameter deletes name and returns its first value.
func (u *URL) RemoveParameter(name string) (string, bool) {
	return u.ParameterMap().Remove(name)
}

// ParameterNames returns the parameter names in insertion order.
func (u *URL) ParameterNames() []string {
	return u.ParameterMap().Names()
}

// isReserved reports whether name is a container-reserved parameter and,
// if so, whether value is acceptable for it.
func isReserved(name, value string) (reserved, valid bool) {
	switch name {
	case PortletModeParam:
		return true, portlet.IsValidMode(value)
	case SecureParam:
		return true, portlet.IsBooleanToken(value)
	case WindowStateParam:
		return true, portlet.IsValidWindowState(value)
	}
	return false, false
}

// setRenderParameters copies the public and private render parameters of
// the request into base. The view-state parameter, preserved action
// parameters, names the URL already carries and names in skip are skipped.
func (u *URL) setRenderParameters(base portlet.BaseURL, skip ...string) {
	req := u.factory.request
	if req == nil {
		return
	}

	own := u.ParameterMap()
	for _, src := range []map[string][]string{req.PublicParameterMap(), req.PrivateParameterMap()} {
		for _, name := range slices.Sorted(maps.Keys(src)) {
			if name == u.factory.viewStateParam {
				continue
			}
			if _, ok := u.factory.preserved[name]; ok {
				continue
			}
			if own.Has(name) || slices.Contains(skip, name) {
				continue
			}
			base.SetParameter(name, src[name])
		}
	}
}
