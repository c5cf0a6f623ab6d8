package unit

import (
	"context"
	"math"
	"testing"

	"github.com/GriffinCanCode/ProbKit/internal/providers/probability"
	"github.com/GriffinCanCode/ProbKit/tests/helpers/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilityProvider(t *testing.T) {
	provider := probability.NewProvider(probability.DefaultOptions())
	ctx := context.Background()

	t.Run("Definition", func(t *testing.T) {
		def := provider.Definition()
		assert.Equal(t, "gaussian", def.ID)
		assert.NotEmpty(t, def.Tools)

		seen := make(map[string]bool)
		for _, tool := range def.Tools {
			assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
			seen[tool.ID] = true
		}
	})

	t.Run("Density Operations", func(t *testing.T) {
		t.Run("Density at mean", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.density", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
				"x":        0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 0.3989422804, result.Data["result"].(float64), 1e-9)
		})

		t.Run("Density with variance four", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.density", map[string]interface{}{
				"mean":     5.0,
				"variance": 4.0,
				"x":        5.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 0.1994711402, result.Data["result"].(float64), 1e-9)
		})

		t.Run("Density with integer params", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.density", map[string]interface{}{
				"mean":     0,
				"variance": 1,
				"x":        0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 0.3989422804, result.Data["result"].(float64), 1e-9)
		})

		t.Run("Density with zero variance", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.density", map[string]interface{}{
				"mean":     3.0,
				"variance": 0.0,
				"x":        3.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 0.0, result.Data["result"])
		})

		t.Run("Density with negative variance", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.density", map[string]interface{}{
				"mean":     0.0,
				"variance": -1.0,
				"x":        0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Density without x", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.density", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("LogDensity in the far tail", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.logdensity", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
				"x":        60.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			ld := result.Data["result"].(float64)
			assert.False(t, math.IsInf(ld, 0))
			assert.InDelta(t, -1800.918938533, ld, 1e-6)
		})

		t.Run("LogDensity with zero variance", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.logdensity", map[string]interface{}{
				"mean":     0.0,
				"variance": 0.0,
				"x":        0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("DensityExt is finite for finite inputs", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.densityext", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
				"x":        0.5,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, false, result.Data["infinite"])
			assert.InDelta(t, 0.3520653268, result.Data["result"].(float64), 1e-9)
		})
	})

	t.Run("Distribution Operations", func(t *testing.T) {
		t.Run("CDF at mean", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.cdf", map[string]interface{}{
				"mean":     2.0,
				"variance": 3.0,
				"x":        2.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 0.5, result.Data["result"].(float64), 1e-12)
		})

		t.Run("CDF of point mass", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.cdf", map[string]interface{}{
				"mean":     1.0,
				"variance": 0.0,
				"x":        0.5,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 0.0, result.Data["result"])
		})

		t.Run("Quantile inverts CDF", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.quantile", map[string]interface{}{
				"mean":     2.0,
				"variance": 3.0,
				"p":        0.5,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 2.0, result.Data["result"].(float64), 1e-12)
		})

		t.Run("Quantile rejects boundary levels", func(t *testing.T) {
			for _, p := range []float64{0.0, 1.0, -0.5, 2.0} {
				result, err := provider.Execute(ctx, "gaussian.quantile", map[string]interface{}{
					"mean":     0.0,
					"variance": 1.0,
					"p":        p,
				}, nil)
				require.NoError(t, err)
				testutil.AssertError(t, result)
			}
		})

		t.Run("Probability below the mean", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.probability", map[string]interface{}{
				"mean":     2.0,
				"variance": 3.0,
				"hi":       2.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 0.5, result.Data["result"].(float64), 1e-12)
		})

		t.Run("Probability of whole line", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.probability", map[string]interface{}{
				"mean":     -1.0,
				"variance": 2.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 1.0, result.Data["result"].(float64), 1e-12)
		})

		t.Run("Probability of central interval", func(t *testing.T) {
			// One standard deviation each side
			result, err := provider.Execute(ctx, "gaussian.probability", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
				"lo":       -1.0,
				"hi":       1.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 0.6826894921, result.Data["result"].(float64), 1e-9)
		})

		t.Run("PointProb of continuous distribution", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.pointprob", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
				"points":   []interface{}{0.0, 1.0, 2.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 0.0, result.Data["result"])
		})

		t.Run("PointProb of point mass containing atom", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.pointprob", map[string]interface{}{
				"mean":     0.0,
				"variance": 0.0,
				"points":   []interface{}{0.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 1.0, result.Data["result"])
		})

		t.Run("PointProb of point mass missing atom", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.pointprob", map[string]interface{}{
				"mean":     0.0,
				"variance": 0.0,
				"points":   []interface{}{1.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 0.0, result.Data["result"])
		})

		t.Run("Mass is normalized", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.mass", map[string]interface{}{
				"mean":     2.0,
				"variance": 3.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 1.0, result.Data["result"].(float64), 1e-6)
			assert.Less(t, result.Data["deviation"].(float64), 1e-6)
		})

		t.Run("Mass of point mass", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.mass", map[string]interface{}{
				"mean":     4.0,
				"variance": 0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 1.0, result.Data["result"])
		})

		t.Run("Moments of normal", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.moments", map[string]interface{}{
				"mean":     2.0,
				"variance": 9.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 2.0, result.Data["mean"].(float64), 1e-12)
			assert.InDelta(t, 9.0, result.Data["variance"].(float64), 1e-12)
			assert.InDelta(t, 3.0, result.Data["stdev"].(float64), 1e-12)
			assert.InDelta(t, 2.0, result.Data["median"].(float64), 1e-12)
		})

		t.Run("Moments of point mass", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.moments", map[string]interface{}{
				"mean":     -3.0,
				"variance": 0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, -3.0, result.Data["mean"])
			assert.Equal(t, 0.0, result.Data["variance"])
		})

		t.Run("Absolute continuity of normal", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.abscont", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertDataField(t, result, "wrt_lebesgue", true)
			testutil.AssertDataField(t, result, "dominates_lebesgue", true)
		})

		t.Run("Absolute continuity of point mass", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.abscont", map[string]interface{}{
				"mean":     0.0,
				"variance": 0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, false, result.Data["wrt_lebesgue"])
			assert.Equal(t, false, result.Data["dominates_lebesgue"])
		})
	})

	t.Run("Sampling Operations", func(t *testing.T) {
		t.Run("Seeded samples are deterministic", func(t *testing.T) {
			params := map[string]interface{}{
				"mean":     1.0,
				"variance": 4.0,
				"count":    5,
				"seed":     42,
			}

			first, err := provider.Execute(ctx, "gaussian.sample", params, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, first)

			second, err := provider.Execute(ctx, "gaussian.sample", params, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, second)

			a := first.Data["samples"].([]float64)
			b := second.Data["samples"].([]float64)
			require.Len(t, a, 5)
			assert.Equal(t, a, b)
		})

		t.Run("Point mass samples are the atom", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.sample", map[string]interface{}{
				"mean":     7.0,
				"variance": 0.0,
				"count":    3,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			for _, v := range result.Data["samples"].([]float64) {
				assert.Equal(t, 7.0, v)
			}
		})

		t.Run("Count must be positive", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.sample", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
				"count":    0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Batch limit enforced", func(t *testing.T) {
			limited := probability.NewProvider(probability.Options{MaxSamples: 10})
			result, err := limited.Execute(ctx, "gaussian.sample", map[string]interface{}{
				"mean":     0.0,
				"variance": 1.0,
				"count":    11,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Fit recovers parameters", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.fit", map[string]interface{}{
				"samples": []interface{}{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 5.0, result.Data["mean"].(float64), 1e-12)
			assert.Equal(t, 8, result.Data["n"])
		})

		t.Run("Fit requires at least two samples", func(t *testing.T) {
			result, err := provider.Execute(ctx, "gaussian.fit", map[string]interface{}{
				"samples": []interface{}{1.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := provider.Execute(ctx, "gaussian.unknown", map[string]interface{}{}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})
}
