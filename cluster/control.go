// Copyright 2024 The CQL Wire Driver Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cluster

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/cqlwire/driver/conn"
	"github.com/cqlwire/driver/frame"
	"github.com/cqlwire/driver/message"
	"github.com/cqlwire/driver/primitive"
)

// runControlConnection owns one long-lived, non-data connection for address: it performs the same handshake as a
// data connection, registers for STATUS_CHANGE, TOPOLOGY_CHANGE and SCHEMA_CHANGE, reports itself ready via activate (which
// starts the node's data pool), and then feeds every subsequent EVENT frame to the actor until the connection
// fails or the Manager is closed.
func (m *Manager) runControlConnection(address string) {
	defer m.wg.Done()
	for {
		select {
		case <-m.ctx.Done():
			return
		default:
		}
		if err := m.controlConnectionOnce(address); err != nil {
			log.Error().Err(err).Msgf("cluster: control connection for %v failed", address)
			m.deactivate(address)
		}
		select {
		case <-m.ctx.Done():
			return
		default:
		}
	}
}

func (m *Manager) controlConnectionOnce(address string) error {
	client := &conn.CqlClient{
		RemoteAddress:  address,
		Authenticator:  m.config.Authenticator,
		Compression:    m.config.Compression,
		MaxInFlight:    conn.DefaultMaxInFlight,
		MaxPending:     conn.DefaultMaxPending,
		ConnectTimeout: m.config.ConnectTimeout,
		ReadTimeout:    m.config.ReadTimeout,
	}
	connection, err := client.ConnectAndInit(m.ctx, primitive.ProtocolVersion4, conn.ManagedStreamId)
	if err != nil {
		return fmt.Errorf("control connection: %w", err)
	}
	defer connection.Close()

	register := frame.NewFrame(primitive.ProtocolVersion4, conn.ManagedStreamId, &message.Register{
		EventTypes: []primitive.EventType{primitive.EventTypeStatusChange, primitive.EventTypeTopologyChange, primitive.EventTypeSchemaChange},
	})
	response, err := connection.SendAndReceive(register)
	if err != nil {
		return fmt.Errorf("REGISTER: %w", err)
	}
	if _, ok := response.Body.Message.(*message.Ready); !ok {
		return fmt.Errorf("expected READY in response to REGISTER, got %v", response.Body.Message)
	}

	log.Info().Msgf("cluster: control connection for %v registered, activating", address)
	m.activate(address)

	events := connection.EventChannel()
	for {
		select {
		case <-m.ctx.Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return fmt.Errorf("event channel closed")
			}
			m.handleEvent(evt)
		}
	}
}

func (m *Manager) handleEvent(f *frame.Frame) {
	switch evt := f.Body.Message.(type) {
	case *message.StatusChangeEvent:
		address := inetAddress(evt.Address)
		switch evt.ChangeType {
		case primitive.StatusChangeTypeUp:
			log.Info().Msgf("cluster: STATUS_CHANGE UP %v", address)
			m.activate(address)
		case primitive.StatusChangeTypeDown:
			log.Info().Msgf("cluster: STATUS_CHANGE DOWN %v", address)
			m.deactivate(address)
		}
	case *message.TopologyChangeEvent:
		log.Debug().Msgf("cluster: TOPOLOGY_CHANGE %v %v (observed, not applied)", evt.ChangeType, inetAddress(evt.Address))
	case *message.SchemaChangeEvent:
		log.Info().Msgf("cluster: SCHEMA_CHANGE %v %v.%v, invalidating prepared cache entries", evt.ChangeType, evt.Keyspace, evt.Object)
		m.cache.InvalidateKeyspaceTable(evt.Keyspace, evt.Object)
	default:
		log.Debug().Msgf("cluster: ignoring unexpected event frame: %v", f)
	}
}

func inetAddress(inet *primitive.Inet) string {
	if inet == nil {
		return ""
	}
	return net.JoinHostPort(inet.Addr.String(), strconv.Itoa(int(inet.Port)))
}
