package polyring

// These methods let *Polynomial[K] itself satisfy
// algebra.Ring[*Polynomial[K]], so a polynomial ring can serve as
// another polynomial ring's base coefficient ring, building a tower of
// polynomial rings with no separate type needed.

// NewZero returns the zero polynomial of p's own ring.
func (p *Polynomial[K]) NewZero() *Polynomial[K] { return p.ring.Zero() }

// NewOne returns the one polynomial of p's own ring.
func (p *Polynomial[K]) NewOne() *Polynomial[K] { return p.ring.One() }

// Add returns x+y; z is unused beyond selecting the generic instance.
func (z *Polynomial[K]) Add(x, y *Polynomial[K]) *Polynomial[K] { return Add(x, y) }

// Sub returns x-y; z is unused beyond selecting the generic instance.
func (z *Polynomial[K]) Sub(x, y *Polynomial[K]) *Polynomial[K] { return Sub(x, y) }

// Mul returns x*y; z is unused beyond selecting the generic instance.
func (z *Polynomial[K]) Mul(x, y *Polynomial[K]) *Polynomial[K] { return Mul(x, y) }
