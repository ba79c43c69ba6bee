package order_events

import "github.com/IBM/sarama"

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
