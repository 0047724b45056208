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

package cqlwire

import "context"

// PageStream pulls the result set of a statement one page at a time. A pull executes the next page using the
// previous page's PagingState; the stream is exhausted once a page arrives without one. If the statement handed
// to NewPageStream is a SimpleStatement (bare query text), the first pull PREPAREs it once and every subsequent
// pull reuses that cached PreparedStatement instead of resending the query text on every page.
type PageStream struct {
	session   *Session
	statement Statement
	opts      ExecOptions

	started bool
	done    bool
}

// NewPageStream creates a stream that has not yet issued its first pull.
func (s *Session) NewPageStream(statement Statement, opts ExecOptions) *PageStream {
	return &PageStream{session: s, statement: statement, opts: opts}
}

// Next fetches the next page, or returns (nil, false, nil) once the result set is exhausted.
func (p *PageStream) Next(ctx context.Context) (*Page, bool, error) {
	if p.done {
		return nil, false, nil
	}
	if !p.started {
		if err := p.prepareOnFirstPull(ctx); err != nil {
			return nil, false, err
		}
	}
	page, err := p.session.Execute(ctx, p.statement, p.opts)
	if err != nil {
		return nil, false, err
	}
	p.started = true
	p.opts.PagingState = page.PagingState
	if page.IsLast() {
		p.done = true
	}
	return page, true, nil
}

// prepareOnFirstPull replaces a text SimpleStatement with a PreparedStatement before the stream's first
// execution, so every later page pull reuses the cached prepared id instead of re-sending the query text.
func (p *PageStream) prepareOnFirstPull(ctx context.Context) error {
	simple, ok := p.statement.(*SimpleStatement)
	if !ok {
		return nil
	}
	prepared, err := p.session.Prepare(ctx, simple.Query)
	if err != nil {
		return err
	}
	positional := make([]interface{}, len(simple.Values))
	for i, v := range simple.Values {
		positional[i] = v.Go
	}
	prepared.Positional = positional
	p.statement = prepared
	return nil
}

// Started reports whether Next has been called at least once.
func (p *PageStream) Started() bool {
	return p.started
}
