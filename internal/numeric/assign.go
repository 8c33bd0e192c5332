package numeric

// Set replaces c with o.
func (c *Complex[T]) Set(o Complex[T]) *Complex[T] {
	*c = o
	return c
}

// SetScalar resets c to (x, 0).
func (c *Complex[T]) SetScalar(x T) *Complex[T] {
	*c = Complex[T]{real: x}
	return c
}

// AddAssign replaces c with c + o.
func (c *Complex[T]) AddAssign(o Complex[T]) *Complex[T] {
	return c.Set(c.Add(o))
}

// AddScalarAssign replaces c with c + x.
func (c *Complex[T]) AddScalarAssign(x T) *Complex[T] {
	return c.Set(c.AddScalar(x))
}

// SubAssign replaces c with c - o.
func (c *Complex[T]) SubAssign(o Complex[T]) *Complex[T] {
	return c.Set(c.Sub(o))
}

// SubScalarAssign replaces c with c - x.
func (c *Complex[T]) SubScalarAssign(x T) *Complex[T] {
	return c.Set(c.SubScalar(x))
}

// MulAssign replaces c with c · o.
func (c *Complex[T]) MulAssign(o Complex[T]) *Complex[T] {
	return c.Set(c.Mul(o))
}

// MulScalarAssign replaces c with c · x.
func (c *Complex[T]) MulScalarAssign(x T) *Complex[T] {
	return c.Set(c.Scale(x))
}

// DivAssign replaces c with c / o. On error c is left unchanged.
func (c *Complex[T]) DivAssign(o Complex[T]) error {
	q, err := c.Div(o)
	if err != nil {
		return err
	}
	c.Set(q)
	return nil
}

// DivScalarAssign replaces c with c / x. On error c is left unchanged.
func (c *Complex[T]) DivScalarAssign(x T) error {
	q, err := c.DivScalar(x)
	if err != nil {
		return err
	}
	c.Set(q)
	return nil
}
