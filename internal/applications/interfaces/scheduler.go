package interfaces

type SchedulerInterface interface {
	Init()
	Stop()
	Open() bool
}
