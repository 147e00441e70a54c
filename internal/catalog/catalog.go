// Package catalog holds the fixed set of cause topics and the records that
// belong to each one. A Catalog is built once and never mutated afterwards.
package catalog

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/impact-search/internal/model"
)

// Topic is one cause key and its bundle.
type Topic struct {
	Key    string
	Bundle model.Bundle
}

// Alias maps an auxiliary keyword onto a topic key.
type Alias struct {
	Keyword string `yaml:"keyword"`
	Topic   string `yaml:"topic"`
}

// Catalog is an ordered, read-only mapping from topic keys to bundles. It is
// safe for concurrent use.
type Catalog struct {
	topics   []Topic
	index    map[string]int
	aliases  []Alias
	trending []string
}

// Normalize trims surrounding whitespace and lowercases s. Topic keys, aliases
// and queries are all compared in this form.
func Normalize(s string) string {
	// Casers carry state, so one is built per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// New validates topics and aliases and returns a Catalog that preserves their
// declaration order.
func New(topics []Topic, aliases []Alias, trending []string) (*Catalog, error) {
	if len(topics) == 0 {
		return nil, eris.New("catalog: no topics")
	}

	c := &Catalog{
		topics:   make([]Topic, 0, len(topics)),
		index:    make(map[string]int, len(topics)),
		aliases:  make([]Alias, 0, len(aliases)),
		trending: append([]string(nil), trending...),
	}

	for _, t := range topics {
		if t.Key == "" {
			return nil, eris.New("catalog: empty topic key")
		}
		if Normalize(t.Key) != t.Key {
			return nil, eris.Errorf("catalog: topic key %q is not normalized", t.Key)
		}
		if _, dup := c.index[t.Key]; dup {
			return nil, eris.Errorf("catalog: duplicate topic key %q", t.Key)
		}
		if err := validateBundle(t.Bundle); err != nil {
			return nil, eris.Wrapf(err, "catalog: topic %q", t.Key)
		}

		b := t.Bundle.Clone()
		b.Query = t.Key
		c.index[t.Key] = len(c.topics)
		c.topics = append(c.topics, Topic{Key: t.Key, Bundle: b})
	}

	for _, a := range aliases {
		kw := Normalize(a.Keyword)
		if kw == "" {
			return nil, eris.Errorf("catalog: empty alias for topic %q", a.Topic)
		}
		if _, ok := c.index[a.Topic]; !ok {
			return nil, eris.Errorf("catalog: alias %q points at unknown topic %q", a.Keyword, a.Topic)
		}
		c.aliases = append(c.aliases, Alias{Keyword: kw, Topic: a.Topic})
	}

	return c, nil
}

func validateBundle(b model.Bundle) error {
	seen := map[string]struct{}{}
	check := func(kind, id string) error {
		if id == "" {
			return eris.Errorf("%s with empty id", kind)
		}
		k := kind + "/" + id
		if _, dup := seen[k]; dup {
			return eris.Errorf("duplicate %s id %q", kind, id)
		}
		seen[k] = struct{}{}
		return nil
	}

	for _, o := range b.Organizations {
		if err := check("organization", o.ID); err != nil {
			return err
		}
	}
	for _, c := range b.Campaigns {
		if err := check("campaign", c.ID); err != nil {
			return err
		}
		if !c.Urgency.Valid() {
			return eris.Errorf("campaign %q has invalid urgency %q", c.ID, c.Urgency)
		}
	}
	for _, v := range b.VolunteerOpportunities {
		if err := check("volunteer opportunity", v.ID); err != nil {
			return err
		}
		if !v.Mode.Valid() {
			return eris.Errorf("volunteer opportunity %q has invalid type %q", v.ID, v.Mode)
		}
	}
	for _, m := range b.MicroActions {
		if err := check("micro action", m.ID); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Keys returns the topic keys in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.topics))
	for i, t := range c.topics {
		keys[i] = t.Key
	}
	return keys
}

// Lookup returns a copy of the bundle stored under key.
func (c *Catalog) Lookup(key string) (model.Bundle, bool) {
	i, ok := c.index[key]
	if !ok {
		return model.Bundle{}, false
	}
	return c.topics[i].Bundle.Clone(), true
}

// Topics returns every topic in declaration order. Bundles are copies.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = Topic{Key: t.Key, Bundle: t.Bundle.Clone()}
	}
	return out
}

// Aliases returns the keyword table in declaration order.
func (c *Catalog) Aliases() []Alias {
	return append([]Alias(nil), c.aliases...)
}

// Trending returns the display labels of the featured causes.
func (c *Catalog) Trending() []string {
	return append([]string(nil), c.trending...)
}
