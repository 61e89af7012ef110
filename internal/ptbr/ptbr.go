// Package ptbr is a deterministic fake-data provider for Brazilian
// Portuguese business records: person and company names, addresses, CPF/CNPJ
// shaped identifiers, CEP, phone numbers, job titles and short Portuguese
// text.
//
// Identifiers follow the conventional formatting only; no check digits are
// computed. The provider draws from a sample.Source, so a seeded source
// makes every value reproducible.
package ptbr

import (
	"fmt"
	"strings"
	"time"

	"github.com/insight-engine/datagen/internal/sample"
)

// Faker generates locale-shaped fake values from a shared random source.
type Faker struct {
	s *sample.Source
}

// New creates a Faker over the given source.
func New(s *sample.Source) *Faker {
	return &Faker{s: s}
}

func (f *Faker) pick(set []string) string {
	return set[f.s.IntBetween(0, len(set)-1)]
}

// Name returns a full person name.
func (f *Faker) Name() string {
	return f.pick(firstNames) + " " + f.pick(lastNames)
}

// Company returns a company name.
func (f *Faker) Company() string {
	return f.pick(companyStems) + " " + f.pick(lastNames) + " " + f.pick(companySuffixes)
}

// City returns a Brazilian city name.
func (f *Faker) City() string {
	return f.pick(cities)
}

// StateAbbr returns a two-letter Brazilian state abbreviation.
func (f *Faker) StateAbbr() string {
	return f.pick(stateAbbrs)
}

// StreetAddress returns a street address with house number.
func (f *Faker) StreetAddress() string {
	return fmt.Sprintf("%s %s, %d", f.pick(streetTypes), f.pick(streetNames), f.s.IntBetween(1, 2000))
}

// Postcode returns a CEP in the 00000-000 format.
func (f *Faker) Postcode() string {
	return fmt.Sprintf("%05d-%03d", f.s.IntBetween(1000, 99999), f.s.IntBetween(0, 999))
}

// CPF returns a CPF-shaped identifier (000.000.000-00).
func (f *Faker) CPF() string {
	return fmt.Sprintf("%03d.%03d.%03d-%02d",
		f.s.IntBetween(0, 999), f.s.IntBetween(0, 999), f.s.IntBetween(0, 999), f.s.IntBetween(0, 99))
}

// CNPJ returns a CNPJ-shaped identifier (00.000.000/0001-00).
func (f *Faker) CNPJ() string {
	return fmt.Sprintf("%02d.%03d.%03d/0001-%02d",
		f.s.IntBetween(0, 99), f.s.IntBetween(0, 999), f.s.IntBetween(0, 999), f.s.IntBetween(0, 99))
}

// Email returns an e-mail address derived from a fresh name.
func (f *Faker) Email() string {
	user := strings.ToLower(f.pick(firstNames)) + "." + strings.ToLower(stripAccents(f.pick(lastNames)))
	return fmt.Sprintf("%s%d@%s", stripAccents(user), f.s.IntBetween(1, 999), f.pick(emailDomains))
}

// Phone returns a mobile number in the (00) 90000-0000 format.
func (f *Faker) Phone() string {
	return fmt.Sprintf("(%02d) 9%04d-%04d", f.s.IntBetween(11, 99), f.s.IntBetween(0, 9999), f.s.IntBetween(0, 9999))
}

// Job returns a job title.
func (f *Faker) Job() string {
	return f.pick(jobs)
}

// Word returns a single Portuguese word.
func (f *Faker) Word() string {
	return f.pick(words)
}

// Sentence returns n words, capitalized, without a trailing period.
func (f *Faker) Sentence(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.pick(words)
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

// DateBetween returns a date uniformly drawn from [from, to], truncated to
// midnight UTC.
func (f *Faker) DateBetween(from, to time.Time) time.Time {
	if to.Before(from) {
		from, to = to, from
	}
	days := int(to.Sub(from).Hours() / 24)
	d := from.AddDate(0, 0, f.s.IntBetween(0, days))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// stripAccents maps accented Latin letters to their ASCII base for e-mail
// local parts.
func stripAccents(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "ã", "a", "â", "a",
		"é", "e", "ê", "e", "í", "i",
		"ó", "o", "õ", "o", "ô", "o",
		"ú", "u", "ç", "c",
	)
	return replacer.Replace(s)
}
