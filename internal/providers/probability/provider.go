package probability

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/ProbKit/internal/dist"
	"github.com/GriffinCanCode/ProbKit/internal/providers/probability/common"
	"github.com/GriffinCanCode/ProbKit/internal/providers/probability/gaussian"
	"github.com/GriffinCanCode/ProbKit/internal/providers/probability/sampling"
	"github.com/GriffinCanCode/ProbKit/internal/types"
)

// Provider implements the Gaussian probability operations
type Provider struct {
	// Module instances
	gaussian *gaussian.GaussianOps
	sampling *sampling.SampleOps
}

// Options configures provider behavior
type Options struct {
	Quadrature dist.Quadrature
	MaxSamples int
}

// DefaultOptions returns production defaults
func DefaultOptions() Options {
	return Options{
		Quadrature: dist.DefaultQuadrature(),
		MaxSamples: 100000,
	}
}

// NewProvider creates a modular probability provider
func NewProvider(opts Options) *Provider {
	ops := &common.Ops{}

	return &Provider{
		gaussian: &gaussian.GaussianOps{Ops: ops, Quad: opts.Quadrature},
		sampling: &sampling.SampleOps{Ops: ops, MaxBatch: opts.MaxSamples},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, p.gaussian.GetTools()...)
	tools = append(tools, p.sampling.GetTools()...)

	return types.Service{
		ID:          "gaussian",
		Name:        "Gaussian Service",
		Description: "Gaussian distribution operations (density, distribution, sampling, fitting)",
		Category:    types.CategoryProbability,
		Capabilities: []string{
			"density",
			"distribution",
			"sampling",
			"fitting",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Density operations
	case "gaussian.density":
		return p.gaussian.Density(ctx, params, appCtx)
	case "gaussian.logdensity":
		return p.gaussian.LogDensity(ctx, params, appCtx)
	case "gaussian.densityext":
		return p.gaussian.DensityExt(ctx, params, appCtx)

	// Distribution operations
	case "gaussian.cdf":
		return p.gaussian.CDF(ctx, params, appCtx)
	case "gaussian.quantile":
		return p.gaussian.Quantile(ctx, params, appCtx)
	case "gaussian.probability":
		return p.gaussian.Probability(ctx, params, appCtx)
	case "gaussian.pointprob":
		return p.gaussian.PointProb(ctx, params, appCtx)
	case "gaussian.mass":
		return p.gaussian.Mass(ctx, params, appCtx)
	case "gaussian.moments":
		return p.gaussian.Moments(ctx, params, appCtx)
	case "gaussian.abscont":
		return p.gaussian.AbsCont(ctx, params, appCtx)

	// Sampling operations
	case "gaussian.sample":
		return p.sampling.Sample(ctx, params, appCtx)
	case "gaussian.fit":
		return p.sampling.Fit(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
