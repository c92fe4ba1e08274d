// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// _MAXREFCOUNT marks a node as "sticky": constants and variables are pinned
// at this value so ordinary Apply/GC bookkeeping never mistakes them for
// reclaimable nodes.
const _MAXREFCOUNT int32 = 0x3FFFFFF

// _LOGLEVEL gates the verbosity of the (always compiled) log.Printf calls
// sprinkled through the manager. It is only raised under the debug build tag.
var _LOGLEVEL int = 0
