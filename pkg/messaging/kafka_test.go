package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetWriterReusesPerTopic(t *testing.T) {
	kp := NewKafkaProducer([]string{"localhost:9092"})
	defer kp.Close()

	a := kp.GetWriter("notification_events")
	b := kp.GetWriter("notification_events")
	c := kp.GetWriter("other")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "notification_events", a.Topic)
}
