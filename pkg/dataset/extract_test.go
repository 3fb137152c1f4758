package dataset

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RyanBlaney/audio-featurize/pkg/mfcc"
)

type ExtractorTestSuite struct {
	suite.Suite
	dataDir string
	entries []Entry
}

func TestExtractorTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

func (s *ExtractorTestSuite) SetupSuite() {
	s.dataDir = s.T().TempDir()

	require.NoError(s.T(), os.Mkdir(filepath.Join(s.dataDir, "blues"), 0755))
	require.NoError(s.T(), os.Mkdir(filepath.Join(s.dataDir, "rock"), 0755))

	s.writeTone(filepath.Join("blues", "blues.00000.wav"), 220)
	s.writeTone(filepath.Join("rock", "rock.00000.wav"), 880)

	s.entries = []Entry{
		{FileName: filepath.Join("blues", "blues.00000.wav"), Class: "blues"},
		{FileName: filepath.Join("rock", "rock.00000.wav"), Class: "rock"},
	}
}

// writeTone writes a one-second 16-bit mono sine fixture.
func (s *ExtractorTestSuite) writeTone(rel string, freq float64) {
	const sampleRate = 8000

	data := make([]int, sampleRate)
	for i := range data {
		data[i] = int(16384 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
	}

	f, err := os.Create(filepath.Join(s.dataDir, rel))
	require.NoError(s.T(), err)

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Data:           data,
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	require.NoError(s.T(), enc.Write(buf))
	require.NoError(s.T(), enc.Close())
	require.NoError(s.T(), f.Close())
}

func (s *ExtractorTestSuite) newExtractor() *Extractor {
	return NewExtractor(ExtractorConfig{
		DataDir: s.dataDir,
		Options: mfcc.DefaultOptions(),
	})
}

func (s *ExtractorTestSuite) TestExtractPreservesOrder() {
	records, err := s.newExtractor().Extract(context.Background(), s.entries)
	require.NoError(s.T(), err)

	require.Len(s.T(), records, 2)
	for i, record := range records {
		assert.Equal(s.T(), s.entries[i].FileName, record.FileName)
		assert.Equal(s.T(), s.entries[i].Class, record.Class)
		assert.Len(s.T(), record.MFCC, 14)
		assert.Len(s.T(), record.Delta1, 14)
		assert.Len(s.T(), record.Delta2, 14)
	}
}

func (s *ExtractorTestSuite) TestExtractFeatureMatrix() {
	records, err := s.newExtractor().Extract(context.Background(), s.entries)
	require.NoError(s.T(), err)

	matrix, err := mfcc.FeatureMatrix(records)
	require.NoError(s.T(), err)

	require.Len(s.T(), matrix, 2)
	assert.Len(s.T(), matrix[0], 126)
	assert.Len(s.T(), matrix[1], 126)
}

func (s *ExtractorTestSuite) TestExtractMissingFileAborts() {
	entries := append([]Entry{}, s.entries...)
	entries = append(entries, Entry{FileName: "jazz/missing.wav", Class: "jazz"})

	records, err := s.newExtractor().Extract(context.Background(), entries)
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "missing.wav")
	assert.Nil(s.T(), records)
}

func (s *ExtractorTestSuite) TestExtractCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := s.newExtractor().Extract(ctx, s.entries)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, context.Canceled)
	assert.Nil(s.T(), records)
}

func (s *ExtractorTestSuite) TestExtractEmptyEntries() {
	records, err := s.newExtractor().Extract(context.Background(), nil)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), records)
}
