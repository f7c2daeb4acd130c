// Command geom2d is a single executable front door over the library's
// four major operations: convex hull, multi-line intersection, Voronoi
// diagrams, and planar subdivision from lines.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/geoplane/geom2d/dcel"
	"github.com/geoplane/geom2d/linesegment"
	"github.com/geoplane/geom2d/point"
	"github.com/geoplane/geom2d/polygon/simple"
	"github.com/geoplane/geom2d/voronoi"
)

func main() {
	cmd := &cli.Command{
		Name:  "geom2d",
		Usage: "Computational geometry toolkit: convex hulls, line intersection, Voronoi/Delaunay, planar subdivision",
		Commands: []*cli.Command{
			hullCommand(),
			intersectCommand(),
			voronoiCommand(),
			subdivideCommand(),
		},
		HideVersion: true,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type xy struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type seg struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func readPoints() ([]point.Point[float64], error) {
	var raw []xy
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding points from stdin: %w", err)
	}
	pts := make([]point.Point[float64], len(raw))
	for i, p := range raw {
		pts[i] = point.New(p.X, p.Y)
	}
	return pts, nil
}

func readSegments() ([]linesegment.LineSegment[float64], error) {
	var raw []seg
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding segments from stdin: %w", err)
	}
	segs := make([]linesegment.LineSegment[float64], len(raw))
	for i, s := range raw {
		segs[i] = linesegment.NewFromCoordinates(s.X1, s.Y1, s.X2, s.Y2)
	}
	return segs, nil
}

func writeJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func hullCommand() *cli.Command {
	return &cli.Command{
		Name:      "hull",
		Usage:     "Compute the convex hull of a set of points",
		UsageText: `geom2d hull < points.json  (points.json: [{"x":0,"y":0}, ...])`,
		Action: func(_ context.Context, _ *cli.Command) error {
			pts, err := readPoints()
			if err != nil {
				return err
			}
			hull := simple.ConvexHull(pts...)
			out := make([]xy, len(hull))
			for i, p := range hull {
				out[i] = xy{X: p.X(), Y: p.Y()}
			}
			return writeJSON(out)
		},
	}
}

func intersectCommand() *cli.Command {
	return &cli.Command{
		Name:      "intersect",
		Usage:     "Find all pairwise intersections among a set of line segments",
		UsageText: `geom2d intersect < segments.json  (segments.json: [{"x1":0,"y1":0,"x2":1,"y2":1}, ...])`,
		Action: func(_ context.Context, _ *cli.Command) error {
			segs, err := readSegments()
			if err != nil {
				return err
			}
			crossings := linesegment.FindIntersectionsSweep(segs)
			type crossingOut struct {
				Point    xy    `json:"point"`
				Segments []int `json:"segments"`
			}
			out := make([]crossingOut, len(crossings))
			for i, c := range crossings {
				indices := make([]int, len(c.Segments))
				for j, sl := range c.Segments {
					indices[j] = sl.Index
				}
				out[i] = crossingOut{Point: xy{X: c.Point.X(), Y: c.Point.Y()}, Segments: indices}
			}
			return writeJSON(out)
		},
	}
}

func voronoiCommand() *cli.Command {
	return &cli.Command{
		Name:      "voronoi",
		Usage:     "Compute the Voronoi diagram and dual Delaunay triangulation of a set of sites",
		UsageText: `geom2d voronoi < points.json  (points.json: [{"x":0,"y":0}, ...])`,
		Action: func(_ context.Context, _ *cli.Command) error {
			pts, err := readPoints()
			if err != nil {
				return err
			}
			res, err := voronoi.FindAll(pts)
			if err != nil {
				return err
			}
			type edgeOut struct {
				Site1, Site2     int
				Vertex1, Vertex2 xy
			}
			vertices := make([]xy, len(res.Vertices))
			for i, v := range res.Vertices {
				vertices[i] = xy{X: v.X(), Y: v.Y()}
			}
			edges := make([]edgeOut, len(res.Edges))
			for i, e := range res.Edges {
				edges[i] = edgeOut{
					Site1: e.Site1, Site2: e.Site2,
					Vertex1: vertices[e.Vertex1], Vertex2: vertices[e.Vertex2],
				}
			}
			return writeJSON(struct {
				Edges    []edgeOut          `json:"edges"`
				Delaunay []voronoi.DelaunayEdge `json:"delaunay"`
			}{Edges: edges, Delaunay: res.Delaunay})
		},
	}
}

func subdivideCommand() *cli.Command {
	return &cli.Command{
		Name:      "subdivide",
		Usage:     "Build a planar subdivision (DCEL) from a set of line segments, splitting at every intersection",
		UsageText: `geom2d subdivide < segments.json  (segments.json: [{"x1":0,"y1":0,"x2":1,"y2":1}, ...])`,
		Action: func(_ context.Context, _ *cli.Command) error {
			segs, err := readSegments()
			if err != nil {
				return err
			}
			sub, err := dcel.FromLines(segs)
			if err != nil {
				return err
			}
			return writeJSON(struct {
				Vertices  int `json:"vertices"`
				HalfEdges int `json:"halfEdges"`
				Faces     int `json:"faces"`
			}{
				Vertices:  len(sub.Vertices),
				HalfEdges: len(sub.HalfEdges),
				Faces:     len(sub.Faces),
			})
		},
	}
}
