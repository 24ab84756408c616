// Package logiflow is the domain model of the logiflow server: the entities
// of a multi-tenant logistics operation (orders, deliveries, inventory,
// customers, carriers, routes) and the service interfaces the transport and
// storage layers implement. Every business entity is owned by exactly one
// tenant and all service operations are tenant-scoped unless noted.
package logiflow
