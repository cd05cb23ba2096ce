package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scigolabs/goburgers/InputParameters"
)

func TestLimitParameters(t *testing.T) {
	ip := InputParameters.DefaultBurgersParameters()
	ip.Dt = -1
	ip.Nu = -0.5
	ip.Theta = 0.2
	ip.MaxIterations = 0
	LimitParameters(ip)
	assert.Equal(t, 0.01, ip.Dt)
	assert.Equal(t, 0.01, ip.Nu)
	assert.Equal(t, 1.0, ip.Theta)
	assert.Equal(t, 30, ip.MaxIterations)

	// valid inputs pass through untouched
	ip = InputParameters.DefaultBurgersParameters()
	ip.Theta = 0.5
	LimitParameters(ip)
	assert.Equal(t, 0.5, ip.Theta)
}
