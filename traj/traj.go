/*
 * traj.go, part of cafetools.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package traj defines the trajectories the analyses in cafetools work on:
// sequences of frames with the positions of all particles at a given step.
package traj

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is one snapshot of a trajectory. Positions are in Angstrom, and the
// ith position belongs to the particle with global index i+1 in the ninfo file.
type Frame struct {
	Step      int
	Time      float64
	Positions []r3.Vec
	Box       []float64 //the 9 components of the box vectors, if the trajectory has them.
}

// Trajectory is anything that gives frames in order. Next returns io.EOF
// after the last frame.
type Trajectory interface {
	Next() (*Frame, error)
	//Len returns the number of particles per frame.
	Len() int
}

// Memory is a Trajectory held in memory.
type Memory struct {
	frames []*Frame
	cur    int
}

// NewMemory returns a trajectory that gives the given frames.
func NewMemory(frames ...*Frame) *Memory {
	return &Memory{frames: frames}
}

func (M *Memory) Next() (*Frame, error) {
	if M.cur >= len(M.frames) {
		return nil, io.EOF
	}
	M.cur++
	return M.frames[M.cur-1], nil
}

func (M *Memory) Len() int {
	if len(M.frames) == 0 {
		return 0
	}
	return len(M.frames[0].Positions)
}

// Last reads t to the end and returns its last frame.
func Last(t Trajectory) (*Frame, error) {
	var last *Frame
	for {
		f, err := t.Next()
		if err == io.EOF {
			if last == nil {
				return nil, io.ErrUnexpectedEOF
			}
			return last, nil
		}
		if err != nil {
			return nil, err
		}
		last = f
	}
}
