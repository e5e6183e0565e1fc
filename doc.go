// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package replay provides the value types shared by the deferred-rendering
// command log: geometry, affine transforms, paths, patterns, stroke styles,
// clips and scaled fonts.
//
// The interesting machinery lives in the subpackages:
//
//   - record holds the recording surface: an append-only log of deep-copied
//     drawing commands, a lazily built bounding-box tree for region queries,
//     and the replay state machine.
//   - target defines the destination abstraction commands are replayed
//     against, including a software image target and an analysis target.
//
// A minimal round trip:
//
//	s := record.New(replay.ContentColorAlpha, &replay.Rect{W: 200, H: 200})
//	s.Fill(replay.OperatorOver, replay.NewSolid(replay.RGBA{R: 1, A: 1}),
//	    rectPath(10, 10, 50, 50), replay.FillRuleWinding, 0.1,
//	    replay.AntialiasDefault, nil)
//
//	dst := target.NewImageTarget(200, 200)
//	if err := s.Replay(dst); err != nil {
//	    // handle
//	}
//	img := dst.Image()
//
// Everything a command references (patterns, paths, styles, glyph buffers)
// is copied at record time; callers may mutate or drop their own objects as
// soon as the recording call returns. Scaled fonts are the one exception:
// they are shared and reference counted, never deep-copied.
package replay
