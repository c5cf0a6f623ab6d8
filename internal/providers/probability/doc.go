// Package probability implements the Gaussian service provider.
//
// The provider exposes one-dimensional Gaussian distributions through a
// standardized tool-based interface, split across focused modules:
//   - Gaussian: density, log-density, CDF, quantile, interval and point-set
//     probability, normalization, moments, absolute continuity
//   - Sampling: random draws and parameter fitting
//
// Zero variance is handled throughout: the distribution degenerates to a
// point mass at the mean, with the density convention that the Lebesgue
// density is identically zero.
//
// Example Usage:
//
//	p := probability.NewProvider(probability.DefaultOptions())
//	result, err := p.Execute(ctx, "gaussian.density", params, appCtx)
package probability
