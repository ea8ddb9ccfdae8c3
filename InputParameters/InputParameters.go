package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type Parameters struct {
	Title       string  `yaml:"Title"`
	SecondOrder bool    `yaml:"SecondOrder"`
	Lambda      float64 `yaml:"Lambda"`      // constant diffusion coefficient
	Source      string  `yaml:"Source"`      // "xy" or "constant"
	SourceValue float64 `yaml:"SourceValue"` // used when Source is "constant"
	Parallelism int     `yaml:"Parallelism"` // worker count, 0 = NumCPU
}

func (p *Parameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return err
	}
	if p.Lambda == 0 {
		p.Lambda = 1
	}
	if p.Source == "" {
		p.Source = "constant"
	}
	if p.Source == "constant" && p.SourceValue == 0 {
		p.SourceValue = 1
	}
	return nil
}

func (p *Parameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	order := 1
	if p.SecondOrder {
		order = 2
	}
	fmt.Printf("[%d]\t\t\t= Element Order\n", order)
	fmt.Printf("%8.5f\t\t= Lambda\n", p.Lambda)
	fmt.Printf("[%s]\t\t= Source\n", p.Source)
	if p.Source == "constant" {
		fmt.Printf("%8.5f\t\t= SourceValue\n", p.SourceValue)
	}
	fmt.Printf("[%d]\t\t\t= Parallelism\n", p.Parallelism)
}
