package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/robotalks/pms.go/pkg/framework"
	"github.com/robotalks/pms.go/pkg/l1/comm"
	"github.com/robotalks/pms.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/pms.go/pkg/l1/comm/stream"
	"github.com/robotalks/pms.go/pkg/l1/comm/websocket"
	"github.com/robotalks/pms.go/pkg/l1/msgs"
)

var (
	mqttURL    = "mqtt://localhost:1883/"
	wsURL      string
	replayFile string
	discover   bool
)

func init() {
	if val := os.Getenv("PMS_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&wsURL, "ws", wsURL, "Watch the events of a daemon, e.g. ws://host:9100/events.")
	flag.StringVar(&replayFile, "replay", replayFile, "Print the events recorded in file.")
	flag.BoolVar(&discover, "discover", discover, "List devices on MQTT and exit.")
}

func printMessage(source string, msg framework.Message) {
	log.Printf("%s: [%s] %s", source,
		reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
		msg.(msgs.SerializableMessage).Serializable().String())
}

func printEvents(source string, r comm.PacketReader) error {
	return comm.ReceiveEvents(context.Background(), r, func(msg framework.Message, _ *msgs.Typed) error {
		printMessage(source, msg)
		return nil
	})
}

func watchMQTT() {
	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	defer q.Close()

	if discover {
		infoList, err := mqtt.Discover(context.Background(), q, mqtt.DefaultDiscoverTimeout)
		if err != nil {
			log.Fatalln(err)
		}
		for _, info := range infoList {
			log.Printf("%s [%s] %s", info.Ref.Name(), info.Meta.Port, info.Meta.Description)
		}
		return
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/"+mqtt.MetaTopic) {
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		msg, _, err := msgs.DecodeMessage(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		printMessage(topic, msg)
	}))
	<-(chan struct{})(nil)
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	switch {
	case replayFile != "":
		f, err := os.Open(replayFile)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		if err := printEvents(replayFile, &stream.Reader{Reader: f}); err != nil && err != io.EOF {
			log.Fatalln(err)
		}
	case wsURL != "":
		conn, err := websocket.Dial(wsURL)
		if err != nil {
			log.Fatalln(err)
		}
		defer conn.Close()
		if err := printEvents(wsURL, conn); err != nil {
			log.Fatalln(err)
		}
	default:
		watchMQTT()
	}
}
