// Package dtw computes Dynamic Time Warping (DTW) distances between numeric
// series, and between rhythms through their gap sequences.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. Applied to the composition of a
//	rhythm (the gaps between onsets) it scores how far one rhythm must be
//	stretched to become another: [3 3 2] and [3 3 3 2] are close, [3 3 2]
//	and [1 1 6] are not.
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, optional alignment path
//   - two-row mode: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.MemoryMode = dtw.FullMatrix
//	opts.ReturnPath = true
//	dist, path, err := dtw.RhythmDistance(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
