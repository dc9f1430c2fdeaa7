package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Monomial is a monomial in several named variables with natural-number
// exponents (zero.rig.rs's Monomial, specialized to string variables and
// integer exponents — the only instantiation any ODE analysis needs).
type Monomial struct {
	powers map[string]int
}

func NewMonomial() Monomial { return Monomial{powers: map[string]int{}} }

// GeneratorMonomial builds the monomial consisting of a single variable to
// the first power.
func GeneratorMonomial(v string) Monomial {
	return Monomial{powers: map[string]int{v: 1}}
}

// Mul multiplies two monomials by adding their exponents.
func (m Monomial) Mul(n Monomial) Monomial {
	out := make(map[string]int, len(m.powers)+len(n.powers))
	for v, e := range m.powers {
		out[v] = e
	}
	for v, e := range n.powers {
		out[v] += e
	}
	return Monomial{powers: out}
}

// Variables lists the monomial's variables in sorted order.
func (m Monomial) Variables() []string {
	vars := make([]string, 0, len(m.powers))
	for v := range m.powers {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

func (m Monomial) key() string {
	vars := m.Variables()
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = fmt.Sprintf("%s^%d", v, m.powers[v])
	}
	return strings.Join(parts, "*")
}

func (m Monomial) String() string {
	vars := m.Variables()
	if len(vars) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		if e := m.powers[v]; e == 1 {
			parts = append(parts, v)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", v, e))
		}
	}
	return strings.Join(parts, " ")
}

// term is one (rate, monomial) summand of a Polynomial. Rate names the
// symbolic coefficient (a morphism/transition id); Coef scales it, and is
// also how a purely numeric term (Rate == "") carries its value.
type term struct {
	Coef float64
	Rate string
	Mono Monomial
}

func (t term) key() string { return t.Rate + "|" + t.Mono.key() }

// Polynomial is a linear combination of rate-scaled monomials: the
// symbolic-coefficient analogue of zero.rig.rs's Combination, specialized
// so a rate-free numeric polynomial and a symbolic one share one type.
type Polynomial struct {
	terms map[string]term
}

func ZeroPolynomial() Polynomial { return Polynomial{terms: map[string]term{}} }

// RateTerm builds the single-term polynomial rate*mono.
func RateTerm(rate string, mono Monomial) Polynomial {
	t := term{Coef: 1, Rate: rate, Mono: mono}
	return Polynomial{terms: map[string]term{t.key(): t}}
}

// Constant builds the single-term polynomial representing a bare numeric
// coefficient times mono (no symbolic rate).
func Constant(coef float64, mono Monomial) Polynomial {
	t := term{Coef: coef, Mono: mono}
	return Polynomial{terms: map[string]term{t.key(): t}}
}

func (p Polynomial) clone() Polynomial {
	out := make(map[string]term, len(p.terms))
	for k, t := range p.terms {
		out[k] = t
	}
	return Polynomial{terms: out}
}

// Add combines two polynomials, summing coefficients of matching
// (rate, monomial) pairs.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := p.clone()
	for k, t := range q.terms {
		if existing, ok := out.terms[k]; ok {
			t.Coef += existing.Coef
		}
		out.terms[k] = t
	}
	return out
}

// Neg negates every term's coefficient.
func (p Polynomial) Neg() Polynomial {
	out := make(map[string]term, len(p.terms))
	for k, t := range p.terms {
		t.Coef = -t.Coef
		out[k] = t
	}
	return Polynomial{terms: out}
}

// MulMonomial distributes scalar multiplication by a bare monomial over every term.
func (p Polynomial) MulMonomial(mono Monomial) Polynomial {
	out := make(map[string]term, len(p.terms))
	for _, t := range p.terms {
		t.Mono = t.Mono.Mul(mono)
		out[t.key()] = t
	}
	return Polynomial{terms: out}
}

// Normalize drops terms whose coefficient is zero.
func (p Polynomial) Normalize() Polynomial {
	out := make(map[string]term, len(p.terms))
	for k, t := range p.terms {
		if t.Coef != 0 {
			out[k] = t
		}
	}
	return Polynomial{terms: out}
}

// Eval substitutes a numeric value for every variable (including rate
// names, via the same lookup) and evaluates the polynomial.
func (p Polynomial) Eval(value func(name string) float64) float64 {
	var sum float64
	for _, t := range p.terms {
		v := t.Coef
		if t.Rate != "" {
			v *= value(t.Rate)
		}
		for _, vr := range t.Mono.Variables() {
			for i := 0; i < t.Mono.powers[vr]; i++ {
				v *= value(vr)
			}
		}
		sum += v
	}
	return sum
}

func (p Polynomial) String() string {
	keys := make([]string, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		t := p.terms[k]
		var coef string
		switch {
		case t.Rate != "" && t.Coef == 1:
			coef = t.Rate
		case t.Rate != "" && t.Coef == -1:
			coef = "((-1) " + t.Rate + ")"
		case t.Rate != "":
			coef = fmt.Sprintf("(%g %s)", t.Coef, t.Rate)
		default:
			coef = fmt.Sprintf("%g", t.Coef)
		}
		mono := t.Mono.String()
		if mono == "1" {
			parts = append(parts, coef)
		} else {
			parts = append(parts, coef+" "+mono)
		}
	}
	return strings.Join(parts, " + ")
}

// PolynomialSystem maps each variable (object generator) to the
// polynomial governing its rate of change (zero.rig.rs's Polynomial
// specialized per-component, via stdlib/analyses/ode's PolynomialSystem).
type PolynomialSystem struct {
	order      []string
	components map[string]Polynomial
}

func NewPolynomialSystem() *PolynomialSystem {
	return &PolynomialSystem{components: make(map[string]Polynomial)}
}

// AddTerm accumulates p into the running right-hand side of variable v.
func (s *PolynomialSystem) AddTerm(v string, p Polynomial) {
	if cur, ok := s.components[v]; ok {
		s.components[v] = cur.Add(p)
		return
	}
	s.order = append(s.order, v)
	s.components[v] = p
}

// Normalize drops zero-coefficient terms from every component.
func (s *PolynomialSystem) Normalize() *PolynomialSystem {
	out := NewPolynomialSystem()
	for _, v := range s.order {
		out.AddTerm(v, s.components[v].Normalize())
	}
	return out
}

// Component returns the right-hand side polynomial for variable v.
func (s *PolynomialSystem) Component(v string) (Polynomial, bool) {
	p, ok := s.components[v]
	return p, ok
}

// Variables lists the system's variables in first-declared order.
func (s *PolynomialSystem) Variables() []string { return append([]string{}, s.order...) }

func (s *PolynomialSystem) String() string {
	var b strings.Builder
	for _, v := range s.order {
		fmt.Fprintf(&b, "d%s = %s\n", v, s.components[v])
	}
	return b.String()
}
