package FEM2D

// Coefficient is a scalar field evaluated at mapped integration points.
// Implementations must be read-only: they may be called concurrently from
// many element assemblies and must not mutate state visible across calls.
type Coefficient interface {
	Evaluate(mp *MappedPoint) float64
}

// ConstantCoefficient is a spatially constant field.
type ConstantCoefficient float64

func (c ConstantCoefficient) Evaluate(mp *MappedPoint) float64 { return float64(c) }

// FunctionCoefficient evaluates a user function of the physical
// coordinates.
type FunctionCoefficient func(x, y float64) float64

func (f FunctionCoefficient) Evaluate(mp *MappedPoint) float64 { return f(mp.X, mp.Y) }

// XYCoefficient returns x*y at the mapped point.
type XYCoefficient struct{}

func (XYCoefficient) Evaluate(mp *MappedPoint) float64 { return mp.X * mp.Y }
