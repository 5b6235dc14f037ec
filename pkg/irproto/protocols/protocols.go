// Package protocols registers every built-in vendor protocol with the
// irproto registry. Import it for effect:
//
//	import _ "github.com/iracd/iracd/pkg/irproto/protocols"
package protocols

import (
	_ "github.com/iracd/iracd/pkg/irproto/coolix"
	_ "github.com/iracd/iracd/pkg/irproto/lg"
	_ "github.com/iracd/iracd/pkg/irproto/rhoss"
)
