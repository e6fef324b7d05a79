// Package refs implements Component D's two reference-handle
// disciplines: ScopedTable (stack-discipline, push/pop-to-mark,
// matching MayGC/NoGC scopes in package gc) and GlobalTable
// (independent lifetime, explicit Release, free-slot reuse, optional
// leak detection). Both expose a VisitAll method the collector's root
// enumeration (gc.Roots.VisitAll) calls during Phase 1.
package refs
