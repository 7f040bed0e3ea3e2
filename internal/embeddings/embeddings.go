// Package embeddings turns caption text into fixed-size vectors for the
// similarity index. Vectors come from a hashed bag-of-words projection:
// cheap, deterministic, and good enough to cluster near-identical frame
// captions without calling a model.
package embeddings

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"sync"
)

// Dimensions is the size of every produced vector. The caption table's
// vector column is declared with the same size.
const Dimensions = 64

// Result represents the result of embedding generation
type Result struct {
	Content   string
	Embedding []float32
	Error     error
}

// Work represents a unit of embedding work
type Work struct {
	Content string
	Result  chan<- Result
}

// Service manages embedding generation behind a worker pool with a cache,
// so repeated captions (common for static videos) are only computed once.
type Service struct {
	numWorkers int
	workQueue  chan Work
	cache      sync.Map
	wg         sync.WaitGroup
}

// NewService creates a new embedding service with the specified number of workers
func NewService(numWorkers int) *Service {
	if numWorkers <= 0 {
		numWorkers = 4
	}

	service := &Service{
		numWorkers: numWorkers,
		workQueue:  make(chan Work, 100),
	}
	service.startWorkers()

	return service
}

func (s *Service) startWorkers() {
	for i := 0; i < s.numWorkers; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for work := range s.workQueue {
				if cached, ok := s.cache.Load(work.Content); ok {
					if embedding, validCache := cached.([]float32); validCache {
						work.Result <- Result{
							Content:   work.Content,
							Embedding: embedding,
						}
						continue
					}
				}

				embedding := Embed(work.Content)
				s.cache.Store(work.Content, embedding)

				work.Result <- Result{
					Content:   work.Content,
					Embedding: embedding,
				}
			}
		}()
	}
}

// GetEmbedding requests an embedding generation asynchronously
func (s *Service) GetEmbedding(content string) <-chan Result {
	resultChan := make(chan Result, 1)

	select {
	case s.workQueue <- Work{Content: content, Result: resultChan}:
	default:
		resultChan <- Result{
			Content: content,
			Error:   fmt.Errorf("embedding queue is full, try again later"),
		}
		close(resultChan)
	}

	return resultChan
}

// Embed computes the vector for a piece of caption text. The same input
// always yields the same vector.
func Embed(content string) []float32 {
	vec := make([]float32, Dimensions)

	for _, token := range strings.Fields(strings.ToLower(content)) {
		h := fnv.New32a()
		h.Write([]byte(strings.Trim(token, ".,;:!?")))
		sum := h.Sum32()

		// Sign bit keeps hash collisions from only accumulating.
		sign := float32(1)
		if sum&1 == 1 {
			sign = -1
		}
		vec[sum%Dimensions] += sign
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}

	return vec
}

// Close shuts down the embedding service and waits for all workers to finish
func (s *Service) Close() {
	if s.workQueue != nil {
		close(s.workQueue)
	}
	s.wg.Wait()
}
