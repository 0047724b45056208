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

package conn

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/cqlwire/driver/frame"
	"github.com/cqlwire/driver/message"
	"github.com/cqlwire/driver/primitive"
)

// SetPreparedCache installs the cache the connection consults when an EXECUTE comes back UNPREPARED. It is
// optional; a connection with no cache installed simply surfaces the UNPREPARED error to the caller.
func (c *CqlClientConnection) SetPreparedCache(cache PreparedCache) {
	c.preparedCache = cache
}

// ExecuteWithReprepare sends an EXECUTE request built from a previously prepared query id. If the server responds
// with an UNPREPARED error and a prepared cache is installed, it re-sends PREPARE for query, replaces the prepared
// id cached for query with the freshly returned one, and resubmits the original EXECUTE exactly once with the new
// query id. A second UNPREPARED response is surfaced to the caller as-is, and so is the first one when no cache is
// installed.
func (c *CqlClientConnection) ExecuteWithReprepare(query string, execute *message.Execute, version primitive.ProtocolVersion, streamId int16) (*frame.Frame, error) {
	request := frame.NewFrame(version, streamId, execute)
	response, err := c.SendAndReceive(request)
	if err != nil {
		return nil, err
	}
	unprepared, isUnprepared := response.Body.Message.(*message.Unprepared)
	if !isUnprepared {
		return response, nil
	}
	if c.preparedCache == nil {
		return response, nil
	}
	log.Debug().Msgf("%v: %v, re-preparing %q", c, unprepared, query)
	prepareRequest := frame.NewFrame(version, streamId, &message.Prepare{Query: query})
	prepareResponse, err := c.SendAndReceive(prepareRequest)
	if err != nil {
		return nil, fmt.Errorf("could not re-prepare %q: %w", query, err)
	}
	prepared, ok := prepareResponse.Body.Message.(*message.PreparedResult)
	if !ok {
		return nil, fmt.Errorf("expected RESULT PREPARED while re-preparing %q, got %v", query, prepareResponse.Body.Message)
	}
	c.preparedCache.UpdatePreparedID(query, prepared.PreparedQueryId)
	execute.QueryId = prepared.PreparedQueryId
	retryRequest := frame.NewFrame(version, streamId, execute)
	return c.SendAndReceive(retryRequest)
}
