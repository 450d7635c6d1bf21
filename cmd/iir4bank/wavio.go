package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var errInvalidWAV = errors.New("not a valid WAV file")

// readWAV loads the first channel of a PCM WAV file as a real-valued complex
// signal normalized to [-1, 1).
func readWAV(path string) ([]complex64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: %w", path, errInvalidWAV)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	if dec.BitDepth == 0 {
		return nil, 0, fmt.Errorf("%s: %w", path, errInvalidWAV)
	}

	numChans := max(buf.Format.NumChannels, 1)
	scale := float64(int64(1) << (dec.BitDepth - 1))
	// 8-bit PCM is unsigned with its midpoint at 128.
	offset := 0.0
	if dec.BitDepth == 8 {
		offset = scale
	}

	n := len(buf.Data) / numChans
	signal := make([]complex64, n)
	for i := range signal {
		v := (float64(buf.Data[i*numChans]) - offset) / scale
		signal[i] = complex(float32(v), 0)
	}
	return signal, int(dec.SampleRate), nil
}

// writeEnvelopes stores one envelope per WAV channel as 16-bit PCM. Each
// channel is normalized to its own largest finite value, so a diverging
// channel does not silence the others. +Inf is written as full scale and
// NaN as zero.
func writeEnvelopes(path string, env [][]float64, sampleRate int) error {
	if len(env) == 0 {
		return errors.New("no channels to write")
	}

	n := len(env[0])
	data := make([]int, n*len(env))
	for j, ch := range env {
		gain := 0.0
		if peak := finitePeak(ch); peak > 0 {
			gain = math.MaxInt16 / peak
		}
		for i := range n {
			data[i*len(env)+j] = pcm16(ch[i], gain)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, sampleRate, 16, len(env), 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(env), SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func finitePeak(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		if !math.IsInf(v, 0) && v > peak {
			peak = v
		}
	}
	return peak
}

func pcm16(v, gain float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxInt16
	}
	return int(math.Round(min(max(v*gain, 0), math.MaxInt16)))
}
