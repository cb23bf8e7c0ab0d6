package utils

type Metric struct {
	DiscordSendMessage chan float64
}

func NewMetric() *Metric {
	return &Metric{
		DiscordSendMessage: make(chan float64),
	}
}
