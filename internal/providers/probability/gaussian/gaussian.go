package gaussian

import (
	"context"
	gomath "math"

	"github.com/GriffinCanCode/ProbKit/internal/dist"
	"github.com/GriffinCanCode/ProbKit/internal/providers/probability/common"
	"github.com/GriffinCanCode/ProbKit/internal/types"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianOps handles density and distribution operations
type GaussianOps struct {
	*common.Ops

	// Quad controls the quadrature behind the mass tool.
	Quad dist.Quadrature
}

// GetTools returns gaussian tool definitions
func (g *GaussianOps) GetTools() []types.Tool {
	meanVar := []types.Parameter{
		{Name: "mean", Type: "number", Description: "Distribution mean", Required: true},
		{Name: "variance", Type: "number", Description: "Distribution variance (>= 0)", Required: true},
	}
	meanVarX := append(append([]types.Parameter{}, meanVar...),
		types.Parameter{Name: "x", Type: "number", Description: "Evaluation point", Required: true})

	return []types.Tool{
		{
			ID:          "gaussian.density",
			Name:        "Density",
			Description: "Evaluate the Gaussian probability density at a point",
			Parameters:  meanVarX,
			Returns:     "number",
		},
		{
			ID:          "gaussian.logdensity",
			Name:        "Log Density",
			Description: "Evaluate the Gaussian log-density at a point",
			Parameters:  meanVarX,
			Returns:     "number",
		},
		{
			ID:          "gaussian.densityext",
			Name:        "Extended Density",
			Description: "Evaluate the density in the extended non-negative reals",
			Parameters:  meanVarX,
			Returns:     "object",
		},
		{
			ID:          "gaussian.cdf",
			Name:        "CDF",
			Description: "Evaluate the cumulative distribution function",
			Parameters:  meanVarX,
			Returns:     "number",
		},
		{
			ID:          "gaussian.quantile",
			Name:        "Quantile",
			Description: "Evaluate the inverse CDF at a level in (0,1)",
			Parameters: append(append([]types.Parameter{}, meanVar...),
				types.Parameter{Name: "p", Type: "number", Description: "Level (exclusive 0-1)", Required: true}),
			Returns: "number",
		},
		{
			ID:          "gaussian.probability",
			Name:        "Interval Probability",
			Description: "Probability of an interval; omit lo/hi for unbounded ends",
			Parameters: append(append([]types.Parameter{}, meanVar...),
				types.Parameter{Name: "lo", Type: "number", Description: "Lower endpoint", Required: false},
				types.Parameter{Name: "hi", Type: "number", Description: "Upper endpoint", Required: false}),
			Returns: "number",
		},
		{
			ID:          "gaussian.pointprob",
			Name:        "Point Set Probability",
			Description: "Probability of a finite set of points",
			Parameters: append(append([]types.Parameter{}, meanVar...),
				types.Parameter{Name: "points", Type: "array", Description: "Points in the set", Required: true}),
			Returns: "number",
		},
		{
			ID:          "gaussian.mass",
			Name:        "Total Mass",
			Description: "Recompute total probability by quadrature (normalization check)",
			Parameters:  meanVar,
			Returns:     "object",
		},
		{
			ID:          "gaussian.moments",
			Name:        "Moments",
			Description: "Mean, variance, and derived moments of the distribution",
			Parameters:  meanVar,
			Returns:     "object",
		},
		{
			ID:          "gaussian.abscont",
			Name:        "Absolute Continuity",
			Description: "Absolute continuity relations against Lebesgue measure",
			Parameters:  meanVar,
			Returns:     "object",
		},
	}
}

// params shared by every tool: a validated (mean, variance) pair.
func getParams(params map[string]interface{}) (mean, variance float64, errMsg string) {
	mean, ok := common.GetNumber(params, "mean")
	if !ok {
		return 0, 0, "mean parameter required"
	}
	variance, ok = common.GetNumber(params, "variance")
	if !ok {
		return 0, 0, "variance parameter required"
	}
	if err := common.ValidateNumber(mean, "mean"); err != nil {
		return 0, 0, err.Error()
	}
	if err := common.ValidateNumber(variance, "variance"); err != nil {
		return 0, 0, err.Error()
	}
	if variance < 0 {
		return 0, 0, "variance must be non-negative"
	}
	return mean, variance, ""
}

// Density evaluates the density function
func (g *GaussianOps) Density(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	mean, variance, msg := getParams(params)
	if msg != "" {
		return common.Failure(msg)
	}

	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"result": dist.Density(mean, variance, x),
	})
}

// LogDensity evaluates the log-density; finite wherever the density
// underflows, -Inf only at zero variance (reported as a failure since the
// zero function has no log)
func (g *GaussianOps) LogDensity(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	mean, variance, msg := getParams(params)
	if msg != "" {
		return common.Failure(msg)
	}
	if variance == 0 {
		return common.Failure("log-density undefined for zero variance")
	}

	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"result": dist.LogDensity(mean, variance, x),
	})
}

// DensityExt evaluates the density in the extended non-negative codomain
func (g *GaussianOps) DensityExt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	mean, variance, msg := getParams(params)
	if msg != "" {
		return common.Failure(msg)
	}

	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	e := dist.DensityExt(mean, variance, x)
	data := map[string]interface{}{"infinite": e.IsInf()}
	if !e.IsInf() {
		data["result"] = e.Value()
	}
	return common.Success(data)
}

// CDF evaluates the cumulative distribution function
func (g *GaussianOps) CDF(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, msg := construct(params)
	if msg != "" {
		return common.Failure(msg)
	}

	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": d.CDF(x)})
}

// Quantile evaluates the inverse CDF. The tool surface keeps the level
// strictly inside (0,1) so results stay JSON-representable; the endpoints
// map to the infinities
func (g *GaussianOps) Quantile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, msg := construct(params)
	if msg != "" {
		return common.Failure(msg)
	}

	p, ok := common.GetNumber(params, "p")
	if !ok || p <= 0 || p >= 1 {
		return common.Failure("p parameter required (exclusive 0-1)")
	}

	x, err := d.Quantile(p)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": x})
}

// Probability computes the probability of an interval
func (g *GaussianOps) Probability(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, msg := construct(params)
	if msg != "" {
		return common.Failure(msg)
	}

	lo, ok := common.GetNumber(params, "lo")
	if !ok {
		lo = gomath.Inf(-1)
	}
	hi, ok := common.GetNumber(params, "hi")
	if !ok {
		hi = gomath.Inf(1)
	}
	if gomath.IsNaN(lo) || gomath.IsNaN(hi) {
		return common.Failure("interval endpoints must not be NaN")
	}

	return common.Success(map[string]interface{}{
		"result": d.Prob(dist.Interval{Lo: lo, Hi: hi}),
	})
}

// PointProb computes the probability of a finite point set
func (g *GaussianOps) PointProb(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, msg := construct(params)
	if msg != "" {
		return common.Failure(msg)
	}

	points, ok := common.GetNumbers(params, "points")
	if !ok || len(points) == 0 {
		return common.Failure("points array required")
	}
	if err := common.ValidateNumbers(points, "points"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"result": d.Prob(dist.Points(points)),
	})
}

// Mass recomputes total probability, checking the normalization invariant
func (g *GaussianOps) Mass(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, msg := construct(params)
	if msg != "" {
		return common.Failure(msg)
	}

	var mass float64
	if n, ok := d.(dist.Normal); ok {
		mass = n.TotalMassOpts(g.Quad)
	} else {
		mass = d.TotalMass()
	}

	return common.Success(map[string]interface{}{
		"result":    mass,
		"deviation": gomath.Abs(mass - 1),
	})
}

// Moments reports the distribution's moments; entropy only exists in the
// continuous case
func (g *GaussianOps) Moments(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, msg := construct(params)
	if msg != "" {
		return common.Failure(msg)
	}

	switch d := d.(type) {
	case dist.Normal:
		ref := distuv.Normal{Mu: d.Mu, Sigma: d.StdDev()}
		return common.Success(map[string]interface{}{
			"mean":     ref.Mean(),
			"variance": ref.Variance(),
			"stdev":    ref.StdDev(),
			"median":   ref.Median(),
			"mode":     ref.Mode(),
			"entropy":  ref.Entropy(),
		})
	case dist.PointMass:
		return common.Success(map[string]interface{}{
			"mean":     d.At,
			"variance": 0.0,
			"stdev":    0.0,
			"median":   d.At,
			"mode":     d.At,
		})
	default:
		return common.Failure("unknown distribution kind")
	}
}

// AbsCont reports the absolute continuity relations against Lebesgue
// measure
func (g *GaussianOps) AbsCont(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	d, msg := construct(params)
	if msg != "" {
		return common.Failure(msg)
	}

	return common.Success(map[string]interface{}{
		"wrt_lebesgue":       d.AbsolutelyContinuous(),
		"dominates_lebesgue": d.DominatesLebesgue(),
	})
}

// construct builds the distribution from tool params, funneling every tool
// through the validating constructor.
func construct(params map[string]interface{}) (dist.Distribution, string) {
	mean, variance, msg := getParams(params)
	if msg != "" {
		return nil, msg
	}
	d, err := dist.New(mean, variance)
	if err != nil {
		return nil, err.Error()
	}
	return d, ""
}
