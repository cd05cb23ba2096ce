package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type BurgersParameters struct {
	Title         string  `yaml:"Title"`
	NodeCount     int     `yaml:"NodeCount"`
	DomainLength  float64 `yaml:"DomainLength"`
	Nu            float64 `yaml:"Nu"`
	Dt            float64 `yaml:"Dt"`
	FinalTime     float64 `yaml:"FinalTime"`
	Theta         float64 `yaml:"Theta"` // 1 = backward Euler, 0.5 = Crank-Nicolson
	InitType      string  `yaml:"InitType"`
	Tolerance     float64 `yaml:"Tolerance"`
	MaxIterations int     `yaml:"MaxIterations"`
}

func DefaultBurgersParameters() *BurgersParameters {
	return &BurgersParameters{
		Title:         "Viscous Burgers, periodic domain",
		NodeCount:     100,
		DomainLength:  2.0,
		Nu:            0.01,
		Dt:            0.01,
		FinalTime:     0.5,
		Theta:         1.0,
		InitType:      "sin",
		Tolerance:     1.e-08,
		MaxIterations: 30,
	}
}

func (ip *BurgersParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *BurgersParameters) Print() {
	fmt.Printf("\"%s\"\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= NodeCount\n", ip.NodeCount)
	fmt.Printf("%8.5f\t\t= DomainLength\n", ip.DomainLength)
	fmt.Printf("%8.5f\t\t= Nu\n", ip.Nu)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= Theta\n", ip.Theta)
	fmt.Printf("[%s]\t\t\t= InitType\n", ip.InitType)
	fmt.Printf("%8.1e\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t\t= MaxIterations\n", ip.MaxIterations)
}
