package cloudns

import (
	"net/url"
	"strconv"
	"strings"
)

// pair is a single wire parameter. The vendor's parameter names are a
// literal contract: hyphenated keys, with list values sent as repeated
// `ns[]` / `record-types[]` keys in caller order.
type pair struct {
	key   string
	value string
}

// Params is an ordered parameter set for one API call. Repeated keys
// and insertion order are preserved through encoding. The zero value
// is not usable; construct with [NewParams].
type Params struct {
	pairs []pair
}

func NewParams() *Params {
	return &Params{}
}

// Add appends key=value. An empty value means unset: the key is
// omitted from the wire entirely rather than sent empty.
func (p *Params) Add(key, value string) *Params {
	if value == "" {
		return p
	}
	return p.append(key, value)
}

// AddInt appends key with a decimal value. Zero is the unset sentinel
// and is omitted; vendor identifiers and counts are never zero.
func (p *Params) AddInt(key string, value int64) *Params {
	if value == 0 {
		return p
	}
	return p.append(key, strconv.FormatInt(value, 10))
}

// AddBool always appends, encoding the flag as 1/0. For flags like
// delete-existing-records the vendor distinguishes absent from false,
// so omission is the caller's decision, not AddBool's.
func (p *Params) AddBool(key string, value bool) *Params {
	v := "0"
	if value {
		v = "1"
	}
	return p.append(key, v)
}

// Set appends key=value, replacing the value of an earlier entry with
// the same key instead of repeating it.
func (p *Params) Set(key, value string) *Params {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value
			return p
		}
	}
	return p.append(key, value)
}

func (p *Params) append(key, value string) *Params {
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// Encode renders the set in application/x-www-form-urlencoded form,
// preserving insertion order. url.Values is avoided on purpose: its
// Encode sorts keys.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
