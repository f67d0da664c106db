// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorisation - decide whether a caller may act on an entity
//
// the caller's organisation is read once per invocation from the
// identity port and then checked against the owner and allow-set of
// the entity being accessed:
//
//   create - caller must be the declared owner
//   read   - caller must be the owner or in the allow-set
//   list   - caller must be the organisation being listed
package authorisation

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/bitmark-inc/logger"

	"github.com/ledgerworks/supplychaind/fault"
	"github.com/ledgerworks/supplychaind/ledger"
)

// actions known to the model
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionList   = "list"
)

const rules = `
[request_definition]
r = sub, own, readers, act

[policy_definition]
p = act, scope

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.act == p.act && (r.sub == r.own || (p.scope == "shared" && isReader(r.sub, r.readers)))
`

// owner only, except reads which extend to the allow-set
var policies = [][]string{
	{ActionCreate, "owner"},
	{ActionList, "owner"},
	{ActionRead, "shared"},
}

// Owned - an entity with an owner and an allow-set
type Owned interface {
	Owner() string
	Readers() []string
}

// Guard - the rule evaluator, holds no entity state
type Guard struct {
	log      *logger.L
	enforcer *casbin.SyncedEnforcer
}

// New - build the rule evaluator
func New(log *logger.L) (*Guard, error) {
	m, err := model.NewModelFromString(rules)
	if nil != err {
		return nil, err
	}
	enforcer, err := casbin.NewSyncedEnforcer(m)
	if nil != err {
		return nil, err
	}
	enforcer.EnableLog(false)
	enforcer.AddFunction("isReader", isReader)

	if _, err := enforcer.AddPolicies(policies); nil != err {
		return nil, err
	}

	return &Guard{
		log:      log,
		enforcer: enforcer,
	}, nil
}

// Caller - the organisation of the identity behind this invocation
func (g *Guard) Caller(ctx ledger.Context) (string, error) {
	identity := ctx.GetClientIdentity()
	if nil == identity {
		return "", fault.MissingIdentity
	}
	organisation, err := identity.GetMSPID()
	if nil != err {
		return "", fmt.Errorf("%w: %s", fault.MissingIdentity, err)
	}
	if "" == organisation {
		return "", fault.MissingIdentity
	}
	return organisation, nil
}

// CheckCreate - the caller must be declaring itself as the owner
func (g *Guard) CheckCreate(caller string, owner string) error {
	ok, err := g.allowed(caller, owner, nil, ActionCreate)
	if nil != err {
		return err
	}
	if !ok {
		g.log.Warnf("create denied: caller: %q  owner: %q", caller, owner)
		return fault.PermissionDenied
	}
	return nil
}

// CheckRead - owner or allow-set member
func (g *Guard) CheckRead(caller string, item Owned) error {
	ok, err := g.allowed(caller, item.Owner(), item.Readers(), ActionRead)
	if nil != err {
		return err
	}
	if !ok {
		g.log.Warnf("read denied: caller: %q  owner: %q", caller, item.Owner())
		return fault.Unauthorised
	}
	return nil
}

// CheckList - an organisation may only enumerate itself
func (g *Guard) CheckList(caller string, organisation string) error {
	ok, err := g.allowed(caller, organisation, nil, ActionList)
	if nil != err {
		return err
	}
	if !ok {
		g.log.Warnf("list denied: caller: %q  organisation: %q", caller, organisation)
		return fault.Unauthorised
	}
	return nil
}

// Visible - per item filter for result sets, errors count as hidden
func (g *Guard) Visible(caller string, item Owned) bool {
	ok, err := g.allowed(caller, item.Owner(), item.Readers(), ActionRead)
	if nil != err {
		g.log.Errorf("visibility check error: %s", err)
		return false
	}
	return ok
}

func (g *Guard) allowed(caller string, owner string, readers []string, action string) (bool, error) {
	if "" == caller {
		return false, fault.MissingIdentity
	}
	if nil == readers {
		readers = []string{}
	}
	return g.enforcer.Enforce(caller, owner, readers, action)
}

// matcher function: isReader(subject, readers)
func isReader(arguments ...interface{}) (interface{}, error) {
	if 2 != len(arguments) {
		return false, fmt.Errorf("%w: isReader expects 2 arguments, got %d", fault.UnknownRule, len(arguments))
	}
	subject, ok := arguments[0].(string)
	if !ok {
		return false, nil
	}
	readers, ok := arguments[1].([]string)
	if !ok {
		return false, nil
	}
	for _, r := range readers {
		if r == subject {
			return true, nil
		}
	}
	return false, nil
}
