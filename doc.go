// Package atperf is a study of memory-access optimization on dense
// single-precision kernels, ported from the Arm Total Performance tutorial
// workloads.
//
// The centerpiece is a dense matrix multiply C = A * B taken through a
// ladder of memory-access redesigns:
//
//   - MultiplyNaive: ijk loop order, strided B access (baseline)
//   - MultiplyReordered: ikj loop order, stride-1 inner loop
//   - MultiplyTiled1D: k-strip blocking
//   - MultiplyTiled: full three-loop cache tiling
//   - Multiply: cache tiling + B-panel packing + a 4x4 vector
//     register-blocked micro-kernel (the recommended entry point)
//
// The companion bandwidth kernels (Triad, SoftmaxScale, the AoS/SoA particle
// update) demonstrate the same themes at the streaming level: alias freedom,
// cache-line utilization, and data layout.
//
// All kernels are single-threaded and deterministic: for fixed inputs the
// floating-point summation order is fixed, so results are bit-reproducible
// across runs.
package atperf
