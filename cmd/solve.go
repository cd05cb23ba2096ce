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
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/scigolabs/goburgers/InputParameters"
	"github.com/scigolabs/goburgers/model_problems/Burgers1D"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the implicit Burgers model problem",
	Long: `
Advances the viscous Burgers equation on a periodic 1D mesh with an
implicit Newton solve per time step,

goburgers solve -k 100 --nu 0.01 --finalTime 0.5`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := InputParameters.DefaultBurgersParameters()
		if inputFile, _ := cmd.Flags().GetString("input"); inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				fmt.Printf("unable to read input file %s: %v\n", inputFile, err)
				os.Exit(1)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Printf("unable to parse input file %s: %v\n", inputFile, err)
				os.Exit(1)
			}
		}
		if cmd.Flags().Changed("k") {
			ip.NodeCount, _ = cmd.Flags().GetInt("k")
		}
		if cmd.Flags().Changed("length") {
			ip.DomainLength, _ = cmd.Flags().GetFloat64("length")
		}
		if cmd.Flags().Changed("nu") {
			ip.Nu, _ = cmd.Flags().GetFloat64("nu")
		}
		if cmd.Flags().Changed("dt") {
			ip.Dt, _ = cmd.Flags().GetFloat64("dt")
		}
		if cmd.Flags().Changed("finalTime") {
			ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		}
		if cmd.Flags().Changed("theta") {
			ip.Theta, _ = cmd.Flags().GetFloat64("theta")
		}
		if cmd.Flags().Changed("init") {
			ip.InitType, _ = cmd.Flags().GetString("init")
		}
		if cmd.Flags().Changed("tolerance") {
			ip.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
		}
		if cmd.Flags().Changed("maxIterations") {
			ip.MaxIterations, _ = cmd.Flags().GetInt("maxIterations")
		}
		LimitParameters(ip)
		ip.Print()

		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		graph, _ := cmd.Flags().GetBool("graph")
		delay, _ := cmd.Flags().GetInt("delay")
		RunSolve(ip, graph, time.Duration(delay)*time.Millisecond)
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	ip := InputParameters.DefaultBurgersParameters()
	solveCmd.Flags().StringP("input", "i", "", "YAML case file overriding the built-in defaults")
	solveCmd.Flags().IntP("k", "k", ip.NodeCount, "Number of elements (= periodic nodes) in the mesh")
	solveCmd.Flags().Float64("length", ip.DomainLength, "Length of the periodic domain")
	solveCmd.Flags().Float64("nu", ip.Nu, "Viscosity - decrease for sharper fronts")
	solveCmd.Flags().Float64("dt", ip.Dt, "Implicit time step")
	solveCmd.Flags().Float64("finalTime", ip.FinalTime, "FinalTime - the target end time for the sim")
	solveCmd.Flags().Float64("theta", ip.Theta, "Time scheme weight: 1 = backward Euler, 0.5 = Crank-Nicolson")
	solveCmd.Flags().String("init", ip.InitType, "Initial condition: sin or gauss")
	solveCmd.Flags().Float64("tolerance", ip.Tolerance, "Relative Newton convergence tolerance")
	solveCmd.Flags().Int("maxIterations", ip.MaxIterations, "Maximum Newton iterations per time step")
	solveCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	solveCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	solveCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

// LimitParameters clamps nonsensical inputs to the defaults with a notice.
func LimitParameters(ip *InputParameters.BurgersParameters) {
	def := InputParameters.DefaultBurgersParameters()
	if ip.Dt <= 0 {
		fmt.Printf("Input Dt must be positive\nReplacing with default: %8.4f\n", def.Dt)
		ip.Dt = def.Dt
	}
	if ip.Nu < 0 {
		fmt.Printf("Input Nu must not be negative\nReplacing with default: %8.4f\n", def.Nu)
		ip.Nu = def.Nu
	}
	if ip.Theta < 0.5 || ip.Theta > 1 {
		fmt.Printf("Input Theta outside [0.5, 1]\nReplacing with default: %8.4f\n", def.Theta)
		ip.Theta = def.Theta
	}
	if ip.MaxIterations < 1 {
		fmt.Printf("Input MaxIterations must be at least 1\nReplacing with default: %d\n", def.MaxIterations)
		ip.MaxIterations = def.MaxIterations
	}
}

func RunSolve(ip *InputParameters.BurgersParameters, graph bool, graphDelay time.Duration) {
	c, err := Burgers1D.New(ip)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	hist, err := c.Run(graph, graphDelay)
	if err != nil {
		fmt.Println(err)
		if hist != nil && hist.Len() > 0 {
			fmt.Printf("%d snapshots collected before failure\n", hist.Len())
		}
		os.Exit(1)
	}
	final := hist.Last()
	fmt.Printf("Run complete: %d snapshots, final umin = %8.4f, umax = %8.4f\n",
		hist.Len(), final.Min(), final.Max())
}
