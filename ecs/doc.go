// Package ecs provides ECS adapters for pinboard.
package ecs
