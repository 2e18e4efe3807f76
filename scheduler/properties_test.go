package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulers_Properties(t *testing.T) {
	for _, alg := range Algorithms() {
		for seed := int64(1); seed <= 20; seed++ {
			t.Run(fmt.Sprintf("%s/seed-%d", alg, seed), func(t *testing.T) {
				schedule := GenerateSchedule(rand.New(rand.NewSource(seed)), 8, 12, 7)
				s, err := New(alg, schedule, 3)
				require.NoError(t, err)

				var totalBurst int
				for _, e := range schedule.Entries() {
					totalBurst += e.Process.BurstTime
				}
				limit := schedule.EndTime() + totalBurst + 2

				for steps := 0; ; steps++ {
					require.LessOrEqual(t, steps, limit, "scheduler did not terminate")
					before := s.Now()
					if !s.Proceed() {
						assert.Equal(t, before, s.Now())
						break
					}
					assert.Equal(t, before+1, s.Now())
					assert.Equal(t, s.Now(), s.Timeline().Len())

					if cur := s.CurrentProcess(); cur != nil {
						assert.NotContains(t, s.ReadyQueue(), cur)
						got, _ := s.Timeline().At(s.Now())
						assert.Same(t, cur, got)
					}
					for _, pcb := range s.ReadyQueue() {
						assert.False(t, pcb.Complete())
					}
				}

				assert.Equal(t, totalBurst, s.Timeline().Busy())
				require.Len(t, s.CompletedProcesses(), schedule.Len())

				seen := make(map[int64]bool)
				for _, c := range s.CompletedProcesses() {
					assert.False(t, seen[c.Process.ID], "process %d completed twice", c.Process.ID)
					seen[c.Process.ID] = true

					assert.Equal(t, c.CompletionTime-c.ArrivalTime, c.TurnaroundTime())
					assert.Equal(t, c.TurnaroundTime()-c.Process.BurstTime, c.WaitTime())
					assert.GreaterOrEqual(t, c.WaitTime(), 0)
					assert.GreaterOrEqual(t, c.ResponseTime(), 0)
					assert.LessOrEqual(t, c.ResponseTime(), c.WaitTime())

					got, _ := s.Timeline().At(c.CompletionTime)
					require.NotNil(t, got)
					assert.Equal(t, c.Process.ID, got.Process().ID)
				}
			})
		}
	}
}

func TestSchedulers_NonPreemptiveResponseEqualsWait(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority} {
		t.Run(string(alg), func(t *testing.T) {
			s, err := New(alg, GenerateSchedule(rand.New(rand.NewSource(7)), 10, 8, 6), 1)
			require.NoError(t, err)
			Run(s)

			for _, c := range s.CompletedProcesses() {
				assert.Equal(t, c.WaitTime(), c.ResponseTime())
			}
		})
	}
}

func TestSchedulers_IdempotentCompletion(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			s, err := New(alg, newSchedule(t,
				arrival{time: 0, id: 1, burst: 3},
				arrival{time: 4, id: 2, burst: 2},
			), 2)
			require.NoError(t, err)
			Run(s)

			now := s.Now()
			done := s.CompletedProcesses()
			timeline := pids(s.Timeline())
			for i := 0; i < 5; i++ {
				assert.False(t, s.Proceed())
			}
			assert.Equal(t, now, s.Now())
			assert.Equal(t, done, s.CompletedProcesses())
			assert.Equal(t, timeline, pids(s.Timeline()))
		})
	}
}

func TestSchedulers_CompletedProcessesIsACopy(t *testing.T) {
	s := NewFCFS(newSchedule(t, arrival{time: 0, id: 1, burst: 1}))
	Run(s)

	done := s.CompletedProcesses()
	done[0].CompletionTime = 99
	assert.Equal(t, 1, s.CompletedProcesses()[0].CompletionTime)
}
