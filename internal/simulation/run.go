package simulation

import (
	"github.com/nluthra2001/cpusched/scheduler"
)

// Run validates req, simulates it to completion and reports the outcome.
func Run(req Request, opts ...scheduler.Option) (Report, error) {
	if err := req.Validate(); err != nil {
		return Report{}, err
	}
	alg, err := scheduler.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return Report{}, err
	}
	schedule, err := req.Schedule()
	if err != nil {
		return Report{}, err
	}
	s, err := scheduler.New(alg, schedule, req.quantum(), opts...)
	if err != nil {
		return Report{}, err
	}

	scheduler.Run(s)
	return NewReport(alg, req.quantum(), s), nil
}
