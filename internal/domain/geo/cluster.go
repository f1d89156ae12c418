package geo

import (
	"math"
	"sort"

	"foodmap/internal/domain/entity"
)

const (
	clusterBaseCellDegrees = 0.35
	clusterMinCellDegrees  = 0.0015
	clusterMaxCellDegrees  = 0.2
)

// ClusterCellSizeDegrees returns the cluster grid cell size for a zoom level.
// Lower zoom yields larger cells, higher zoom finer cells, clamped to keep
// both tails usable.
func ClusterCellSizeDegrees(zoom float64) float64 {
	exp := math.Max(0, math.Floor(zoom)-8)
	cell := clusterBaseCellDegrees / math.Pow(2, exp)

	return math.Max(clusterMinCellDegrees, math.Min(cell, clusterMaxCellDegrees))
}

type clusterBucket struct {
	sumLat float64
	sumLng float64
	count  int
	byType map[entity.PlaceType]int
}

type clusterKey struct {
	row int
	col int
}

// ClusterFacilities buckets facilities into a zoom-dependent grid and returns
// one centroid cluster per occupied cell, largest first. Output is
// deterministic for a fixed input: ties on count break on cluster ID.
func ClusterFacilities(facilities []entity.Facility, zoom float64) []entity.ClusterPoint {
	cell := ClusterCellSizeDegrees(zoom)
	buckets := make(map[clusterKey]*clusterBucket)

	for _, f := range facilities {
		// Offset so cell indices are stable across the whole globe.
		key := clusterKey{
			row: int(math.Floor((f.Lat + 90.0) / cell)),
			col: int(math.Floor((f.Lng + 180.0) / cell)),
		}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &clusterBucket{byType: make(map[entity.PlaceType]int)}
			buckets[key] = bucket
		}

		bucket.sumLat += f.Lat
		bucket.sumLng += f.Lng
		bucket.count++
		bucket.byType[f.PlaceType]++
	}

	clusters := make([]entity.ClusterPoint, 0, len(buckets))
	for key, bucket := range buckets {
		clusters = append(clusters, entity.ClusterPoint{
			ID: entity.ClusterID(zoom, key.row, key.col),
			Centroid: entity.Coordinate{
				Lat: bucket.sumLat / float64(bucket.count),
				Lng: bucket.sumLng / float64(bucket.count),
			},
			Count:      bucket.count,
			CountsByPT: bucket.byType,
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}

		return clusters[i].ID < clusters[j].ID
	})

	return clusters
}
