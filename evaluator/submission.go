// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package evaluator

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashchain/fault"
)

const (
	submissionSignal = "inproc://hashchain-submission-signal"
	pollTimeout      = -1 // block until a socket is ready
)

type submission struct {
	log        *logger.L
	sigSend    *zmq.Socket // signal send
	sigReceive *zmq.Socket // signal receive
	sockets    []*zmq.Socket
}

// initialise the submission
func (sub *submission) initialise(configuration *Configuration) error {

	log := logger.New("submission")
	sub.log = log

	log.Info("initialising…")

	if 0 == len(configuration.Listen) {
		return fault.ErrWrongEndpointString
	}

	// signalling channel
	var err error
	sub.sigSend, sub.sigReceive, err = newSignalPair(submissionSignal)
	if nil != err {
		return err
	}

	// one REP socket per configured endpoint
	for _, address := range configuration.Listen {
		socket, err := zmq.NewSocket(zmq.REP)
		if nil != err {
			return err
		}
		socket.SetLinger(0)
		err = socket.Bind(address)
		if nil != err {
			socket.Close()
			return err
		}
		log.Infof("listen on: %s", address)
		sub.sockets = append(sub.sockets, socket)
	}

	return nil
}

// Run - wait for submitted jobs and answer them
func (sub *submission) Run(args interface{}, shutdown <-chan struct{}) {

	log := sub.log

	log.Info("starting…")

	go func() {
		poller := zmq.NewPoller()
		poller.Add(sub.sigReceive, zmq.POLLIN)
		for _, socket := range sub.sockets {
			poller.Add(socket, zmq.POLLIN)
		}

	loop:
		for {
			polled, err := poller.Poll(pollTimeout)
			if nil != err {
				log.Errorf("poll error: %s", err)
				continue loop
			}

			for _, p := range polled {
				switch s := p.Socket; s {
				case sub.sigReceive:
					break loop
				default:
					data, err := s.RecvBytes(0)
					if nil != err {
						log.Errorf("receive error: %s", err)
						continue loop
					}
					sub.answer(s, data)
				}
			}
		}

		log.Info("shutting down…")
		sub.sigReceive.Close()
		for _, socket := range sub.sockets {
			socket.Close()
		}
	}()

	// wait for shutdown
	<-shutdown
	_, _ = sub.sigSend.SendMessage("stop")
	_ = sub.sigSend.Close()
}

// process one request and send the reply on the same socket
func (sub *submission) answer(socket *zmq.Socket, data []byte) {
	log := sub.log

	log.Debugf("received message: %q", data)

	if err := rateLimit(globalData.limiter); nil != err {
		reply := marshalReply(&JobReply{Error: err.Error()})
		_, _ = socket.SendBytes(reply, 0)
		return
	}

	reply := processRequest(data, log)
	_, err := socket.SendBytes(reply, 0)
	if nil != err {
		log.Errorf("send error: %s", err)
	}
}
