package main

import (
	"context"
	"flag"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/telemetry/comm/mqtt"
	"github.com/robotalks/edgebot/pkg/telemetry/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/edgebot/"
	topic   = "#"
)

func init() {
	if val := os.Getenv("EDGEBOT_TELEMETRY_URL"); strings.HasPrefix(val, "mqtt") {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&topic, "topic", topic, "Topic filter, e.g. edgebot/+/event.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	q.Sub(topic, mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/"+mqtt.MetaTopic) {
			if len(payload) == 0 {
				log.Printf("%s: gone", topic)
			} else {
				log.Printf("%s: %s", topic, string(payload))
			}
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: #%d [%s] %s", topic, typed.Sequence,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			msg.(msgs.SerializableMessage).Serializable().String())
	}))

	token := q.Connect()
	if token.Wait(); token.Error() != nil {
		log.Fatalln(token.Error())
	}
	err = framework.NewRunner().HandleSignals().Go(framework.NamedRun("edgemon", &monitor{q})).Wait()
	if err != nil {
		log.Fatalln(err)
	}
}

type monitor struct {
	q *mqtt.Queue
}

func (m *monitor) Run(ctx context.Context) error {
	<-ctx.Done()
	return m.q.Close()
}
