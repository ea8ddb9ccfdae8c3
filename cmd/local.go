/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"runtime"
	"sync"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/pdekit/poisson2d/FEM2D"
	"github.com/pdekit/poisson2d/InputParameters"
	"github.com/pdekit/poisson2d/utils"
)

type ModelLocal struct {
	ICFile  string
	Profile bool
	Perf    bool
}

// LocalCmd represents the local command
var LocalCmd = &cobra.Command{
	Use:   "local",
	Short: "Assemble local element matrices and load vectors over a mesh",
	Long:  `Assemble local element matrices and load vectors over a mesh`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("local called")
		ml := &ModelLocal{}
		if ml.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		ml.Profile, _ = cmd.Flags().GetBool("profile")
		ml.Perf, _ = cmd.Flags().GetBool("perf")
		ip := processInput(ml)
		RunLocal(ml, ip)
	},
}

func processInput(ml *ModelLocal) (ip *InputParameters.Parameters) {
	var (
		err error
	)
	if len(ml.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Unit Square"
SecondOrder: true
Lambda: 1.
Source: xy          # Can be "constant"
Parallelism: 2
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(ml.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.Parameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(LocalCmd)
	LocalCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- SecondOrder\n\t- Lambda")
	LocalCmd.Flags().Bool("profile", false, "write a CPU profile of the assembly run")
	LocalCmd.Flags().Bool("perf", false, "count CPU instructions over the assembly loop (linux)")
}

func RunLocal(ml *ModelLocal, ip *InputParameters.Parameters) {
	if ml.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	np := ip.Parallelism
	if np <= 0 {
		np = runtime.NumCPU()
	}
	msh := FEM2D.NewUnitSquareMesh()
	if np > msh.NumElements() {
		np = msh.NumElements()
	}
	fes := FEM2D.NewFESpace(msh, ip.SecondOrder)
	utils.InitTimers(np)

	laplace := FEM2D.NewLaplaceIntegrator(FEM2D.ConstantCoefficient(ip.Lambda))
	var f FEM2D.Coefficient
	switch ip.Source {
	case "xy":
		f = FEM2D.XYCoefficient{}
	default:
		f = FEM2D.ConstantCoefficient(ip.SourceValue)
	}
	source := FEM2D.NewSourceIntegrator(f)

	ip.Print()
	fmt.Println(fes)

	run := func() error { return assembleAll(np, fes, laplace, source) }
	var err error
	if ml.Perf {
		err = countInstructions(run)
	} else {
		err = run()
	}
	if err != nil {
		panic(err)
	}
	fmt.Print(utils.TimerReport())
}

// assembleAll plays the host framework role: it walks the mesh elements in
// parallel, one output buffer and one scratch arena per worker, and calls
// the local assemblers for each element.
func assembleAll(np int, fes *FEM2D.FESpace,
	laplace *FEM2D.LaplaceIntegrator, source *FEM2D.SourceIntegrator) error {
	var (
		msh  = fes.Mesh
		pm   = utils.NewPartitionMap(np, msh.NumElements())
		fel  = fes.GetFE()
		ndof = fel.NDof()
		wg   sync.WaitGroup
		errs = make([]error, np)
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var (
				sp    = utils.NewScratch(4*ndof*ndof, n)
				elmat = utils.NewMatrix(ndof, ndof)
				elvec = utils.NewVector(ndof)
			)
			kMin, kMax := pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				trans := msh.ElementTransformation(k)
				if err := laplace.CalcElementMatrix(fel, trans, elmat, sp); err != nil {
					errs[n] = err
					return
				}
				if err := source.CalcElementVector(fel, trans, elvec, sp); err != nil {
					errs[n] = err
					return
				}
				printElement(k, fes.GetDofNrs(k), elmat, elvec)
			}
		}(n)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

var printMutex sync.Mutex

func printElement(k int, dnums []int, elmat utils.Matrix, elvec utils.Vector) {
	printMutex.Lock()
	defer printMutex.Unlock()
	fmt.Printf("element %d, dofs %v\n", k, dnums)
	nr, nc := elmat.Dims()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			fmt.Printf("%10.6f ", elmat.At(i, j))
		}
		fmt.Printf("\n")
	}
	fmt.Printf("elvec = %v\n", elvec.DataP)
}
