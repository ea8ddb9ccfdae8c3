package FEM2D

import "fmt"

// FESpace connects the local reference elements to the global mesh: it
// numbers the degrees of freedom and hands out the finite element and dof
// numbers of each mesh element. First order puts one dof on each vertex;
// second order adds one per edge.
type FESpace struct {
	Mesh        *Mesh
	SecondOrder bool

	nvert, ndof int
}

func NewFESpace(msh *Mesh, secondOrder bool) (fes *FESpace) {
	fes = &FESpace{
		Mesh:        msh,
		SecondOrder: secondOrder,
	}
	fes.Update()
	return
}

// Update recomputes the dof count from the mesh.
func (fes *FESpace) Update() {
	fes.nvert = fes.Mesh.NumVertices()
	fes.ndof = fes.nvert
	if fes.SecondOrder {
		fes.ndof += fes.Mesh.NumEdges()
	}
}

func (fes *FESpace) NDof() int { return fes.ndof }

// GetDofNrs returns the global dof numbers of element k: vertex dofs
// first, then edge dofs in TrigEdges order.
func (fes *FESpace) GetDofNrs(k int) (dnums []int) {
	var (
		tri = fes.Mesh.EToV[k]
	)
	for _, v := range tri {
		dnums = append(dnums, v)
	}
	if fes.SecondOrder {
		for _, e := range fes.Mesh.EToEd[k] {
			dnums = append(dnums, fes.nvert+e)
		}
	}
	return
}

// GetBoundaryDofNrs returns the global dof numbers of boundary segment b.
func (fes *FESpace) GetBoundaryDofNrs(b int) (dnums []int) {
	var (
		seg = fes.Mesh.BToV[b]
	)
	for _, v := range seg {
		dnums = append(dnums, v)
	}
	if fes.SecondOrder {
		dnums = append(dnums, fes.nvert+fes.Mesh.BToEd[b])
	}
	return
}

// GetFE returns the reference finite element of the volume elements.
func (fes *FESpace) GetFE() FiniteElement {
	if fes.SecondOrder {
		return QuadraticTrig{}
	}
	return LinearTrig{}
}

// GetBoundaryFE returns the reference finite element of the boundary
// segments.
func (fes *FESpace) GetBoundaryFE() FiniteElement {
	if fes.SecondOrder {
		return QuadraticSegm{}
	}
	return LinearSegm{}
}

func (fes *FESpace) String() string {
	order := 1
	if fes.SecondOrder {
		order = 2
	}
	return fmt.Sprintf("FESpace{order %d, #vert = %d, #edge = %d, ndof = %d}",
		order, fes.nvert, fes.Mesh.NumEdges(), fes.ndof)
}
