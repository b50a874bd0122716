// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package algorithm

import (
	"errors"
	"fmt"

	xerrors "github.com/reductionkit/reduce/src/x/errors"
)

var errEmptyPropertyName = errors.New("property name must not be empty")

// PropertyInfo describes a declared workspace property.
type PropertyInfo struct {
	Name        string
	Direction   Direction
	Optionality Optionality
}

type property struct {
	info  PropertyInfo
	value Workspace
	set   bool
}

// Properties holds the workspace properties of an algorithm in
// declaration order.
type Properties struct {
	order []string
	props map[string]*property
}

// NewProperties returns an empty set of properties.
func NewProperties() *Properties {
	return &Properties{props: make(map[string]*property)}
}

// Declare declares a workspace property.
func (p *Properties) Declare(name string, direction Direction, optionality Optionality) error {
	if name == "" {
		return xerrors.NewInvalidParamsError(errEmptyPropertyName)
	}
	if _, ok := p.props[name]; ok {
		return xerrors.NewInvalidParamsError(fmt.Errorf("property %s already declared", name))
	}
	p.order = append(p.order, name)
	p.props[name] = &property{info: PropertyInfo{
		Name:        name,
		Direction:   direction,
		Optionality: optionality,
	}}
	return nil
}

// Declared returns the declared properties in declaration order.
func (p *Properties) Declared() []PropertyInfo {
	infos := make([]PropertyInfo, 0, len(p.order))
	for _, name := range p.order {
		infos = append(infos, p.props[name].info)
	}
	return infos
}

// SetProperty sets a property. A nil workspace is a set value, it stands
// for the absent workspace of ranks that hold no data.
func (p *Properties) SetProperty(name string, value Workspace) error {
	prop, err := p.lookup(name)
	if err != nil {
		return err
	}
	prop.value = value
	prop.set = true
	return nil
}

// Property returns the value of a property, nil when unset.
func (p *Properties) Property(name string) (Workspace, error) {
	prop, err := p.lookup(name)
	if err != nil {
		return nil, err
	}
	return prop.value, nil
}

// IsDefault returns whether a property was never set or was reset. Unknown
// properties are reported as default.
func (p *Properties) IsDefault(name string) bool {
	prop, ok := p.props[name]
	return !ok || !prop.set
}

// Reset returns a property to its unset state.
func (p *Properties) Reset(name string) error {
	prop, err := p.lookup(name)
	if err != nil {
		return err
	}
	prop.value = nil
	prop.set = false
	return nil
}

func (p *Properties) lookup(name string) (*property, error) {
	prop, ok := p.props[name]
	if !ok {
		return nil, xerrors.NewInvalidParamsError(fmt.Errorf("unknown property %s", name))
	}
	return prop, nil
}
