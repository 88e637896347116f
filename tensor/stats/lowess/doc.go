// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lowess provides locally weighted scatterplot smoothing (LOWESS),
a local polynomial regression of Y on X.

For each query point x0, the k = ceil(Span * N) observations nearest to x0
are selected, given tricube weights relative to the largest distance in
that neighborhood, and a linear or quadratic polynomial is fit to them by
weighted least squares (QR decomposition of the weighted design). The fit
evaluated at x0 is the smoothed value. Each smoothed value is a linear
combination of the observed Y values, and the coefficients of that
combination (one row of the smoothing operator) give the standard error
that is used for the confidence band.

The Symmetric family adds robustness iterations: observations with large
residuals relative to the median absolute residual are down-weighted with
bisquare weights, and the fit is repeated.

Points where a local fit cannot be computed (too few neighbors for the
polynomial degree, or a singular weighted design such as a neighborhood
with a single distinct X) are handled according to [Params.OnFailure]:
fail the whole call, skip the point, or substitute the local weighted
mean. Recovered failures are reported on each [Estimate].

Larger spans usually give smoother curves with smaller total variation,
but this is not guaranteed. On monotone data a wide linear fit can
overshoot at the ends of the X range, so the total variation of the
smoothed curve can grow with the span.

For query points where all k nearest observations share the same X as
x0, the neighborhood is every observation at that X, so the result does
not depend on the input order.

A [Model] is immutable once [Fit] returns, and all of its methods can be
called concurrently. Independent query points are fit in parallel.
*/
package lowess
